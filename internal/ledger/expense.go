package ledger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
	"gorm.io/gorm/clause"
)

// AddExpense records an expense against a budget of the user and decrements
// the remaining amount of the budget by the expense amount.
//
// Input is validated before anything is written. The insert and the
// decrement share one transaction: either both are applied or neither is.
// If the commit fails, its outcome is unknown and the budget is flagged for
// reconciliation. In both failure cases, ErrConsistency is returned.
//
// The returned budget carries the authoritative remaining amount.
func (l *Ledger) AddExpense(ctx context.Context, userID, budgetID uint64, amount decimal.Decimal, description string) (models.Expense, models.Budget, error) {
	err := models.ValidateAmount(amount, l.maxAmount)
	if err != nil {
		return models.Expense{}, models.Budget{}, err
	}

	description, err = models.ValidateDescription(description)
	if err != nil {
		return models.Expense{}, models.Budget{}, err
	}

	// Once accepted, the expense is recorded even if the client goes away
	ctx = context.WithoutCancel(ctx)

	tx := l.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("could not start transaction for expense")
		return models.Expense{}, models.Budget{}, models.ErrGeneral
	}

	budget, err := lockBudget(tx, budgetID, userID)
	if err != nil {
		tx.Rollback()
		return models.Expense{}, models.Budget{}, err
	}

	expense := models.Expense{
		UserID:      userID,
		BudgetID:    budget.ID,
		Amount:      amount,
		Description: description,
	}

	err = tx.Omit(clause.Associations).Create(&expense).Error
	if err != nil {
		tx.Rollback()
		return models.Expense{}, models.Budget{}, err
	}

	budget, err = adjust(tx, budget, amount.Neg())
	if err != nil {
		tx.Rollback()
		log.Error().Err(err).Uint64("budget", budgetID).Msg("decrementing remaining amount failed, expense rolled back")
		return models.Expense{}, models.Budget{}, fmt.Errorf("%w: %w", ErrConsistency, err)
	}

	err = l.commit(tx)
	if err != nil {
		log.Error().Err(err).Uint64("budget", budgetID).Msg("commit for expense failed, flagging budget for reconciliation")
		l.flagForReconciliation(ctx, budgetID)
		return models.Expense{}, models.Budget{}, fmt.Errorf("%w: %w", ErrConsistency, err)
	}

	log.Debug().Uint64("budget", budget.ID).Uint64("expense", expense.ID).Str("remaining", budget.Remaining.String()).Msg("expense recorded")
	return expense, budget, nil
}

// flagForReconciliation marks the budget so that the next reconciliation
// repairs it.
func (l *Ledger) flagForReconciliation(ctx context.Context, budgetID uint64) {
	err := l.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("id = ?", budgetID).
		Update("needs_reconciliation", true).
		Error
	if err != nil {
		log.Error().Err(err).Uint64("budget", budgetID).Msg("budget could not be flagged for reconciliation")
	}
}

// ExpensesForDay returns the expenses recorded against the budget of the user
// for the day, newest first, together with that budget.
//
// If the user has no budget for the day, the budget is nil and there are no expenses.
func (l *Ledger) ExpensesForDay(ctx context.Context, userID uint64, day types.Day) ([]models.Expense, *models.Budget, error) {
	db := l.db.WithContext(ctx)
	expenses := make([]models.Expense, 0)

	budget, err := budgetForDay(db, userID, day)
	if err != nil {
		return nil, nil, err
	}

	if budget == nil {
		return expenses, nil, nil
	}

	err = db.
		Where("user_id = ? AND budget_id = ?", userID, budget.ID).
		Order("date DESC, id DESC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, nil, err
	}

	return expenses, budget, nil
}
