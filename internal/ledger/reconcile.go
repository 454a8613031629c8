package ledger

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"gorm.io/gorm"
)

// Scope limits a reconciliation to the budgets of one user.
// The zero value reconciles all budgets.
type Scope struct {
	UserID uint64
}

// Failure is a budget that could not be reconciled.
type Failure struct {
	BudgetID uint64 `json:"budgetId" example:"42"`
	Error    string `json:"error" example:"an error occurred on the server during your request"`
}

// Report summarizes a reconciliation run.
type Report struct {
	Checked  int       `json:"checked" example:"12"` // Number of budgets that were checked
	Repaired int       `json:"repaired" example:"1"` // Number of budgets whose remaining amount was corrected
	Failures []Failure `json:"failures"`             // Budgets that could not be reconciled
}

// Reconcile recomputes the remaining amount of every budget in scope as its
// amount minus the sum of its expenses and clears the reconciliation flag.
//
// A budget that fails is logged and reported, the others are still
// reconciled. Running Reconcile again without new expenses changes nothing.
func (l *Ledger) Reconcile(ctx context.Context, scope Scope) (Report, error) {
	report := Report{Failures: make([]Failure, 0)}

	q := l.db.WithContext(ctx).Model(&models.Budget{}).Order("id ASC")
	if scope.UserID != 0 {
		q = q.Where("user_id = ?", scope.UserID)
	}

	var ids []uint64
	err := q.Pluck("id", &ids).Error
	if err != nil {
		return report, err
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Checked++

		repaired, err := l.reconcileBudget(ctx, id)
		if err != nil {
			log.Error().Err(err).Uint64("budget", id).Msg("reconciliation failed")
			report.Failures = append(report.Failures, Failure{BudgetID: id, Error: err.Error()})
			continue
		}

		if repaired {
			report.Repaired++
		}
	}

	log.Info().Uint64("user", scope.UserID).Int("checked", report.Checked).Int("repaired", report.Repaired).Int("failed", len(report.Failures)).Msg("reconciliation finished")
	return report, nil
}

// reconcileBudget reconciles a single budget and reports if its remaining
// amount was wrong.
func (l *Ledger) reconcileBudget(ctx context.Context, id uint64) (bool, error) {
	var repaired bool

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		err := tx.Clauses(lockingClause).First(&budget, id).Error
		if err != nil {
			return err
		}

		var amounts []decimal.Decimal
		err = tx.Model(&models.Expense{}).Where("budget_id = ?", id).Pluck("amount", &amounts).Error
		if err != nil {
			return err
		}

		spent := decimal.Zero
		for _, a := range amounts {
			spent = spent.Add(a)
		}

		remaining := budget.Amount.Sub(spent)
		if remaining.Equal(budget.Remaining) && !budget.NeedsReconciliation {
			return nil
		}

		stored := budget.Remaining

		err = tx.Model(&budget).Updates(map[string]any{
			"remaining":            remaining,
			"needs_reconciliation": false,
		}).Error
		if err != nil {
			return err
		}

		if !remaining.Equal(stored) {
			repaired = true
			log.Warn().Uint64("budget", id).Str("stored", stored.String()).Str("computed", remaining.String()).Msg("remaining amount repaired")
		}

		return nil
	})

	return repaired, err
}
