package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination describes one page of a list of budgets.
type Pagination struct {
	Page       int   `json:"page" example:"1"`       // The current page, starting at 1
	Limit      int   `json:"limit" example:"10"`     // Maximum number of resources per page
	Total      int64 `json:"total" example:"23"`     // Total number of resources
	TotalPages int   `json:"totalPages" example:"3"` // Number of pages
	HasMore    bool  `json:"hasMore" example:"true"` // Whether there are more pages after this one
}

// CreateBudget creates the budget of a user for a day. The zero day is
// today. Remaining is initialized to amount.
//
// A second budget for the same user and day fails with ErrDuplicateBudget.
// The check is done by the unique index of the database.
func (l *Ledger) CreateBudget(ctx context.Context, userID uint64, day types.Day, amount decimal.Decimal) (models.Budget, error) {
	err := models.ValidateBudgetAmount(amount, l.maxAmount)
	if err != nil {
		return models.Budget{}, err
	}

	if day.IsZero() {
		day = types.Today()
	}

	budget := models.Budget{
		UserID: userID,
		Day:    day,
		Amount: amount,
	}

	err = l.db.WithContext(context.WithoutCancel(ctx)).Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	log.Debug().Uint64("user", userID).Uint64("budget", budget.ID).Str("day", day.String()).Msg("budget created")
	return budget, nil
}

// BudgetForDay returns the budget of the user for the day or nil if
// there is none. The day matches the interval [day, day+1).
func (l *Ledger) BudgetForDay(ctx context.Context, userID uint64, day types.Day) (*models.Budget, error) {
	return budgetForDay(l.db.WithContext(ctx), userID, day)
}

func budgetForDay(db *gorm.DB, userID uint64, day types.Day) (*models.Budget, error) {
	var budgets []models.Budget
	err := db.
		Where("user_id = ?", userID).
		Where("day >= ? AND day < ?", day, day.Next()).
		Limit(1).
		Find(&budgets).
		Error
	if err != nil {
		return nil, err
	}

	if len(budgets) == 0 {
		return nil, nil
	}

	return &budgets[0], nil
}

// Budget returns the budget with the ID if it is owned by the user.
func (l *Ledger) Budget(ctx context.Context, budgetID, userID uint64) (models.Budget, error) {
	var budget models.Budget
	err := l.db.WithContext(ctx).Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Budget{}, ErrBudgetNotFound
		}
		return models.Budget{}, err
	}

	return budget, nil
}

// ListBudgets returns one page of the budgets of a user, the most recent day first.
//
// page starts at 1. A page or limit of 0 selects the defaults.
func (l *Ledger) ListBudgets(ctx context.Context, userID uint64, page, limit int) ([]models.Budget, Pagination, error) {
	if page == 0 {
		page = 1
	}

	if limit == 0 {
		limit = DefaultPageSize
	}

	if page < 0 {
		return nil, Pagination{}, fmt.Errorf("%w: page must be 1 or greater", models.ErrValidation)
	}

	if limit < 0 || limit > MaxPageSize {
		return nil, Pagination{}, fmt.Errorf("%w: limit must be between 1 and %d", models.ErrValidation, MaxPageSize)
	}

	db := l.db.WithContext(ctx)

	var total int64
	err := db.Model(&models.Budget{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	budgets := make([]models.Budget, 0)
	err = db.
		Where("user_id = ?", userID).
		Order("day DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&budgets).
		Error
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return budgets, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

// DecrementRemaining subtracts amount from the remaining amount of the budget.
// There is no floor at zero, a negative remaining amount means overspending.
func (l *Ledger) DecrementRemaining(ctx context.Context, budgetID, userID uint64, amount decimal.Decimal) (models.Budget, error) {
	return l.AdjustRemaining(ctx, budgetID, userID, amount.Neg())
}

// AdjustRemaining adds the signed delta to the remaining amount of the budget.
func (l *Ledger) AdjustRemaining(ctx context.Context, budgetID, userID uint64, delta decimal.Decimal) (models.Budget, error) {
	var budget models.Budget

	err := l.db.WithContext(context.WithoutCancel(ctx)).Transaction(func(tx *gorm.DB) error {
		locked, err := lockBudget(tx, budgetID, userID)
		if err != nil {
			return err
		}

		budget, err = adjust(tx, locked, delta)
		return err
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}
