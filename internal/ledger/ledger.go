// Package ledger keeps the remaining amount of every budget consistent with
// the expenses recorded against it.
//
// All operations are scoped by the user ID of the caller. A budget owned by
// another user is reported exactly like a budget that does not exist.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateBudget = models.ErrBudgetDayNotUnique
	ErrBudgetNotFound  = fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
	ErrConsistency     = errors.New("the expense could not be recorded, please try again")
)

var lockingClause = clause.Locking{Strength: "UPDATE"}

// Ledger is the authoritative store of budgets and their remaining amounts.
type Ledger struct {
	db        *gorm.DB
	maxAmount decimal.Decimal

	// commit finishes the transaction of AddExpense
	commit func(tx *gorm.DB) error
}

// New returns a Ledger backed by db. Amounts above maxAmount are rejected,
// a non-positive maxAmount selects models.DefaultMaxAmount.
func New(db *gorm.DB, maxAmount decimal.Decimal) *Ledger {
	if !maxAmount.IsPositive() {
		maxAmount = models.DefaultMaxAmount
	}

	return &Ledger{
		db:        db,
		maxAmount: maxAmount,
		commit: func(tx *gorm.DB) error {
			return tx.Commit().Error
		},
	}
}

// MaxAmount returns the largest accepted amount.
func (l *Ledger) MaxAmount() decimal.Decimal {
	return l.maxAmount
}

// lockBudget reads the budget and locks its row until the transaction ends.
//
// SQLite has no row locks, there the single connection of the pool
// serializes all transactions.
func lockBudget(tx *gorm.DB, budgetID, userID uint64) (models.Budget, error) {
	var budget models.Budget
	err := tx.
		Clauses(lockingClause).
		Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).
		Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Budget{}, ErrBudgetNotFound
	}

	return budget, err
}

// adjust applies delta to the remaining amount of a budget locked by tx.
func adjust(tx *gorm.DB, budget models.Budget, delta decimal.Decimal) (models.Budget, error) {
	remaining := budget.Remaining.Add(delta)

	err := tx.Model(&budget).Update("remaining", remaining).Error
	if err != nil {
		return models.Budget{}, err
	}

	budget.Remaining = remaining
	return budget, nil
}
