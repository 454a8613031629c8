// Package monthly keeps totals of expenses grouped in month buckets.
//
// Monthly expenses are independent of daily budgets, adding one never
// changes the remaining amount of any budget.
package monthly

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var ErrDateOutsideMonth = fmt.Errorf("%w: the date must be within the month", models.ErrValidation)

// Aggregator stores monthly expenses and computes their totals.
type Aggregator struct {
	db        *gorm.DB
	maxAmount decimal.Decimal
}

// Total is the content of one month bucket.
type Total struct {
	Entries    []models.MonthlyExpense `json:"monthlyExpenses"`             // All expenses of the month, oldest first
	TotalSpend decimal.Decimal         `json:"totalSpend" example:"1532.4"` // Sum of all expenses of the month
}

// MaxSpendDay is the day of a month with the highest sum of expenses.
type MaxSpendDay struct {
	Amount decimal.Decimal `json:"amount" example:"420"`      // Sum of the expenses of the day
	Date   *types.Day      `json:"date" example:"2024-06-03"` // The day. null when the month has no expenses
}

// Bucket is the total of one month.
type Bucket struct {
	Mid        types.MonthID   `json:"mid" example:"06-2024"`
	TotalSpend decimal.Decimal `json:"totalSpend" example:"1532.4"`
}

// New returns an Aggregator backed by db. A non-positive maxAmount
// selects models.DefaultMaxAmount.
func New(db *gorm.DB, maxAmount decimal.Decimal) *Aggregator {
	if !maxAmount.IsPositive() {
		maxAmount = models.DefaultMaxAmount
	}

	return &Aggregator{db: db, maxAmount: maxAmount}
}

// AddMonthlyExpense records an expense in the bucket mid.
//
// A zero date is set to the current time. Any other date must be within the month.
func (a *Aggregator) AddMonthlyExpense(ctx context.Context, userID uint64, mid string, amount decimal.Decimal, description string, date time.Time) (models.MonthlyExpense, error) {
	id, month, err := parseMid(mid)
	if err != nil {
		return models.MonthlyExpense{}, err
	}

	err = models.ValidateAmount(amount, a.maxAmount)
	if err != nil {
		return models.MonthlyExpense{}, err
	}

	description, err = models.ValidateDescription(description)
	if err != nil {
		return models.MonthlyExpense{}, err
	}

	if !date.IsZero() && !month.Contains(date) {
		return models.MonthlyExpense{}, ErrDateOutsideMonth
	}

	expense := models.MonthlyExpense{
		UserID:      userID,
		Mid:         id,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	err = a.db.WithContext(context.WithoutCancel(ctx)).Create(&expense).Error
	if err != nil {
		return models.MonthlyExpense{}, err
	}

	log.Debug().Uint64("user", userID).Str("mid", string(id)).Uint64("expense", expense.ID).Msg("monthly expense recorded")
	return expense, nil
}

// MonthlyTotal returns all expenses of the bucket and their sum.
// A bucket without expenses has a total of zero.
func (a *Aggregator) MonthlyTotal(ctx context.Context, userID uint64, mid string) (Total, error) {
	id, _, err := parseMid(mid)
	if err != nil {
		return Total{}, err
	}

	entries, err := a.entries(ctx, userID, id)
	if err != nil {
		return Total{}, err
	}

	return Total{
		Entries:    entries,
		TotalSpend: sum(entries),
	}, nil
}

// MaxSpendDay returns the day of the bucket with the highest sum of expenses.
func (a *Aggregator) MaxSpendDay(ctx context.Context, userID uint64, mid string) (MaxSpendDay, error) {
	id, _, err := parseMid(mid)
	if err != nil {
		return MaxSpendDay{}, err
	}

	entries, err := a.entries(ctx, userID, id)
	if err != nil {
		return MaxSpendDay{}, err
	}

	return MaxSpendDayOf(entries), nil
}

// MaxSpendDayOf groups the entries by UTC calendar day and returns the day
// with the highest sum.
//
// Entries must be ordered by date. On a tie, the earliest day wins.
func MaxSpendDayOf(entries []models.MonthlyExpense) MaxSpendDay {
	var (
		best    MaxSpendDay
		current types.Day
		spent   decimal.Decimal
	)

	check := func() {
		if best.Date == nil || spent.GreaterThan(best.Amount) {
			day := current
			best = MaxSpendDay{Amount: spent, Date: &day}
		}
	}

	for i, e := range entries {
		day := types.DayOf(e.Date)

		if i > 0 && !day.Equal(current) {
			check()
			spent = decimal.Zero
		}

		current = day
		spent = spent.Add(e.Amount)
	}

	if len(entries) > 0 {
		check()
	}

	return best
}

// ListBucketsWithTotals returns the total of every month bucket of the user,
// the most recent month first.
func (a *Aggregator) ListBucketsWithTotals(ctx context.Context, userID uint64) ([]Bucket, error) {
	var entries []models.MonthlyExpense
	err := a.db.WithContext(ctx).
		Select("mid", "amount").
		Where("user_id = ?", userID).
		Find(&entries).
		Error
	if err != nil {
		return nil, err
	}

	totals := make(map[types.MonthID]decimal.Decimal)
	for _, e := range entries {
		totals[e.Mid] = totals[e.Mid].Add(e.Amount)
	}

	buckets := make([]Bucket, 0, len(totals))
	for mid, total := range totals {
		buckets = append(buckets, Bucket{Mid: mid, TotalSpend: total})
	}

	slices.SortFunc(buckets, func(x, y Bucket) int {
		mx, _ := x.Mid.Month()
		my, _ := y.Mid.Month()

		switch {
		case mx.After(my):
			return -1
		case mx.Before(my):
			return 1
		default:
			return 0
		}
	})

	return buckets, nil
}

func (a *Aggregator) entries(ctx context.Context, userID uint64, mid types.MonthID) ([]models.MonthlyExpense, error) {
	entries := make([]models.MonthlyExpense, 0)
	err := a.db.WithContext(ctx).
		Where("user_id = ? AND mid = ?", userID, mid).
		Order("date ASC, id ASC").
		Find(&entries).
		Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func parseMid(mid string) (types.MonthID, types.Month, error) {
	id, err := types.ParseMonthID(mid)
	if err != nil {
		return "", types.Month{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	month, err := id.Month()
	if err != nil {
		return "", types.Month{}, fmt.Errorf("%w: %w", models.ErrValidation, err)
	}

	return id, month, nil
}

func sum(entries []models.MonthlyExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}

	return total
}
