package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/types"
	"gorm.io/gorm"
)

// MonthlyExpense is an expense in the month bucket identified by Mid.
//
// Monthly expenses are tracked independently of daily budgets.
type MonthlyExpense struct {
	DefaultModel
	UserID      uint64          `json:"userId" gorm:"index:idx_monthly_user_mid;not null" example:"7"`           // Owner of the expense
	Mid         types.MonthID   `json:"mid" gorm:"index:idx_monthly_user_mid;not null;size:7" example:"06-2024"` // The month bucket, formatted as MM-YYYY
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50"`                           // The amount spent
	Description string          `json:"description" gorm:"not null" example:"Electricity"`                       // What the money was spent on
	Date        time.Time       `json:"date" example:"2024-06-03T08:12:44.123512Z"`                              // When the expense happened
}

// BeforeSave
//   - trims whitespace from the description
//   - sets the timezone for the Date to UTC, defaulting to now
//   - verifies amount and description
func (m *MonthlyExpense) BeforeSave(_ *gorm.DB) error {
	m.Description = strings.TrimSpace(m.Description)

	if m.Date.IsZero() {
		m.Date = time.Now().In(time.UTC)
	} else {
		m.Date = m.Date.In(time.UTC)
	}

	if !m.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if m.Description == "" {
		return ErrExpenseDescriptionRequired
	}

	return nil
}

// AfterFind sets the timezone for the Date to UTC.
func (m *MonthlyExpense) AfterFind(tx *gorm.DB) error {
	m.Date = m.Date.In(time.UTC)
	return m.DefaultModel.AfterFind(tx)
}
