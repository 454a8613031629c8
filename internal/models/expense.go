package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending record against a Budget.
type Expense struct {
	DefaultModel
	UserID      uint64          `json:"userId" gorm:"index;not null" example:"7"`       // Owner of the expense
	BudgetID    uint64          `json:"budgetId" gorm:"index;not null" example:"42"`    // The budget the expense is recorded against
	Budget      Budget          `json:"-"`                                              // gorm relation, not serialized
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"120"` // The amount spent
	Description string          `json:"description" gorm:"not null" example:"Lunch"`    // What the money was spent on
	Date        time.Time       `json:"date" example:"2024-06-01T12:31:12.418232Z"`     // When the expense happened
}

// BeforeSave
//   - trims whitespace from the description
//   - sets the timezone for the Date to UTC, defaulting to now
//   - verifies amount and description
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if e.Description == "" {
		return ErrExpenseDescriptionRequired
	}

	return nil
}

// AfterFind sets the timezone for the Date to UTC.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return e.DefaultModel.AfterFind(tx)
}
