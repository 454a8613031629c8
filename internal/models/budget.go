package models

import (
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/types"
	"gorm.io/gorm"
)

// Budget is the spending limit of a user for one day.
//
// Remaining starts out equal to Amount and is decreased by every expense
// recorded against the budget. It may become negative when the user overspends.
type Budget struct {
	DefaultModel
	UserID              uint64          `json:"userId" gorm:"uniqueIndex:idx_budget_user_day;not null" example:"7"`                // Owner of the budget
	Day                 types.Day       `json:"day" gorm:"uniqueIndex:idx_budget_user_day;not null" example:"2024-06-01"`          // The day the budget is for
	Amount              decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`                                    // The allocated amount
	Remaining           decimal.Decimal `json:"remaining" gorm:"type:DECIMAL(20,8)" example:"380"`                                 // What is left after all expenses
	NeedsReconciliation bool            `json:"needsReconciliation" gorm:"not null;default:false" example:"false" default:"false"` // Set when the remaining amount could not be confirmed
}

// BeforeCreate ensures that the amount is valid and initializes
// the remaining amount.
func (b *Budget) BeforeCreate(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	b.Remaining = b.Amount
	return nil
}

// Overspent reports if nothing of the budget is left.
func (b Budget) Overspent() bool {
	return !b.Remaining.IsPositive()
}
