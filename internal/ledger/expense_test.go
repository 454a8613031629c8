package ledger_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/ledger"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// TestAddExpenseSequence records expenses one after the other and verifies
// the remaining amount after each one, including overspending.
func (suite *TestSuiteStandard) TestAddExpenseSequence() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	tests := []struct {
		amount    float64
		remaining float64
	}{
		{120, 380},
		{300, 80},
		{100, -20},
	}

	for _, tt := range tests {
		expense, b, err := suite.ledger.AddExpense(context.Background(), 1, budget.ID, decimal.NewFromFloat(tt.amount), "Groceries")
		suite.Require().Nil(err)

		suite.Assert().NotZero(expense.ID)
		suite.Assert().Equal(budget.ID, expense.BudgetID)
		suite.Assert().True(decimal.NewFromFloat(tt.remaining).Equal(b.Remaining), "returned remaining is %s, expected %v", b.Remaining, tt.remaining)

		suite.assertRemaining(budget, tt.remaining)
		suite.assertInvariant(budget)
	}

	suite.Assert().True(suite.reload(budget).Overspent())
}

func (suite *TestSuiteStandard) TestAddExpenseFields() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	before := time.Now().UTC().Add(-time.Second)
	expense := suite.addTestExpense(budget, 12.34, "  Coffee with a friend ")

	suite.Assert().Equal("Coffee with a friend", expense.Description)
	suite.Assert().Equal(uint64(1), expense.UserID)
	suite.Assert().True(decimal.NewFromFloat(12.34).Equal(expense.Amount))
	suite.Assert().True(expense.Date.After(before), "the date must default to now")
	suite.Assert().Equal(time.UTC, expense.Date.Location())

	suite.assertRemaining(budget, 487.66)
}

// TestAddExpenseInvalid verifies that invalid input changes nothing.
func (suite *TestSuiteStandard) TestAddExpenseInvalid() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	tests := []struct {
		name        string
		amount      decimal.Decimal
		description string
		err         error
	}{
		{"Zero amount", decimal.Zero, "Lunch", models.ErrExpenseAmountNotPositive},
		{"Negative amount", decimal.NewFromFloat(-5), "Lunch", models.ErrValidation},
		{"Empty description", decimal.NewFromFloat(5), "", models.ErrExpenseDescriptionRequired},
		{"Whitespace description", decimal.NewFromFloat(5), " \t ", models.ErrValidation},
		{"Amount out of range", models.DefaultMaxAmount.Add(decimal.NewFromFloat(0.01)), "Yacht", models.ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, _, err := suite.ledger.AddExpense(context.Background(), 1, budget.ID, tt.amount, tt.description)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	var count int64
	models.DB.Model(&models.Expense{}).Count(&count)
	suite.Assert().Zero(count, "no expense may be created from invalid input")
	suite.assertRemaining(budget, 500)
}

func (suite *TestSuiteStandard) TestAddExpenseMaxAmount() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	_, b, err := suite.ledger.AddExpense(context.Background(), 1, budget.ID, models.DefaultMaxAmount, "Everything")
	suite.Require().Nil(err, "the maximum amount itself is accepted")
	suite.Assert().True(decimal.NewFromInt(500).Sub(models.DefaultMaxAmount).Equal(b.Remaining))
}

func (suite *TestSuiteStandard) TestAddExpenseBudgetNotFound() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	tests := []struct {
		name     string
		userID   uint64
		budgetID uint64
	}{
		{"Budget of other user", 2, budget.ID},
		{"Non-existing budget", 1, budget.ID + 100},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, _, err := suite.ledger.AddExpense(context.Background(), tt.userID, tt.budgetID, decimal.NewFromFloat(10), "Lunch")
			assert.ErrorIs(t, err, ledger.ErrBudgetNotFound)
			assert.True(t, strings.HasPrefix(err.Error(), "there is no budget"), err.Error())
		})
	}

	var count int64
	models.DB.Model(&models.Expense{}).Count(&count)
	suite.Assert().Zero(count)
	suite.assertRemaining(budget, 500)
}

// TestAddExpenseCanceledContext verifies that an accepted expense is
// recorded even if the caller is gone.
func (suite *TestSuiteStandard) TestAddExpenseCanceledContext() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := suite.ledger.AddExpense(ctx, 1, budget.ID, decimal.NewFromFloat(20), "Taxi")
	suite.Require().Nil(err)
	suite.assertRemaining(budget, 480)
	suite.assertInvariant(budget)
}

// TestAddExpenseDecrementFails verifies that the expense is rolled back when
// the remaining amount cannot be updated.
func (suite *TestSuiteStandard) TestAddExpenseDecrementFails() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)
	_ = suite.addTestExpense(budget, 100, "Rent share")

	err := models.DB.Callback().Update().Before("gorm:update").Register("test:fail_budget_update", func(db *gorm.DB) {
		if db.Statement.Table == "budgets" {
			_ = db.AddError(errors.New("disk I/O error"))
		}
	})
	suite.Require().Nil(err)

	_, _, err = suite.ledger.AddExpense(context.Background(), 1, budget.ID, decimal.NewFromFloat(50), "Cinema")
	suite.Assert().ErrorIs(err, ledger.ErrConsistency)

	var count int64
	models.DB.Model(&models.Expense{}).Where("budget_id = ?", budget.ID).Count(&count)
	suite.Assert().Equal(int64(1), count, "the expense must be rolled back")

	b := suite.reload(budget)
	suite.Assert().True(decimal.NewFromFloat(400).Equal(b.Remaining))
	suite.Assert().False(b.NeedsReconciliation, "a rolled back expense leaves a consistent budget")
	suite.assertInvariant(budget)
}

// TestAddExpenseCommitFails verifies that a budget is flagged when the
// outcome of the commit is unknown and that reconciliation repairs it.
func (suite *TestSuiteStandard) TestAddExpenseCommitFails() {
	tests := []struct {
		name      string
		end       func(tx *gorm.DB) *gorm.DB
		remaining float64
		expenses  int64
	}{
		{"Committed", func(tx *gorm.DB) *gorm.DB { return tx.Commit() }, 450, 1},
		{"Rolled back", func(tx *gorm.DB) *gorm.DB { return tx.Rollback() }, 500, 0},
	}

	for i, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := suite.createTestBudget(1, types.NewDay(2024, time.June, i+1), 500)

			l := ledger.New(models.DB, decimal.Zero)
			l.SetCommit(func(tx *gorm.DB) error {
				tt.end(tx)
				return errors.New("connection reset by peer")
			})

			_, _, err := l.AddExpense(context.Background(), 1, budget.ID, decimal.NewFromFloat(50), "Concert")
			assert.ErrorIs(t, err, ledger.ErrConsistency)

			b := suite.reload(budget)
			assert.True(t, b.NeedsReconciliation, "budget must be flagged")

			var count int64
			models.DB.Model(&models.Expense{}).Where("budget_id = ?", budget.ID).Count(&count)
			assert.Equal(t, tt.expenses, count)

			_, err = suite.ledger.Reconcile(context.Background(), ledger.Scope{UserID: 1})
			assert.Nil(t, err)

			b = suite.reload(budget)
			assert.False(t, b.NeedsReconciliation, "reconciliation must clear the flag")
			assert.True(t, decimal.NewFromFloat(tt.remaining).Equal(b.Remaining), "remaining is %s, expected %v", b.Remaining, tt.remaining)
			suite.assertInvariant(budget)
		})
	}
}

func (suite *TestSuiteStandard) TestAddExpenseDBClosed() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)
	suite.CloseDB()

	_, _, err := suite.ledger.AddExpense(context.Background(), 1, budget.ID, decimal.NewFromFloat(10), "Lunch")
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

// TestAddExpenseConcurrent verifies that no decrement is lost when
// expenses for the same budget are recorded concurrently.
func (suite *TestSuiteStandard) TestAddExpenseConcurrent() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	var wg sync.WaitGroup
	errs := make(chan error, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := suite.ledger.AddExpense(context.Background(), 1, budget.ID, decimal.NewFromFloat(12.5), "Snack")
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	suite.assertRemaining(budget, 250)
	suite.assertInvariant(budget)
}

func (suite *TestSuiteStandard) TestExpensesForDay() {
	day := types.NewDay(2024, time.June, 1)
	budget := suite.createTestBudget(1, day, 500)
	other := suite.createTestBudget(1, day.Next(), 500)

	first := suite.addTestExpense(budget, 10, "Breakfast")
	second := suite.addTestExpense(budget, 20, "Lunch")
	_ = suite.addTestExpense(other, 30, "Dinner")

	expenses, b, err := suite.ledger.ExpensesForDay(context.Background(), 1, day)
	suite.Require().Nil(err)
	suite.Require().NotNil(b)
	suite.Assert().Equal(budget.ID, b.ID)
	suite.Assert().True(decimal.NewFromFloat(470).Equal(b.Remaining))

	suite.Require().Len(expenses, 2)
	suite.Assert().Equal(second.ID, expenses[0].ID, "newest expense must come first")
	suite.Assert().Equal(first.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestExpensesForDayWithoutBudget() {
	day := types.NewDay(2024, time.June, 1)
	budget := suite.createTestBudget(2, day, 500)
	_ = suite.addTestExpense(budget, 10, "Breakfast")

	expenses, b, err := suite.ledger.ExpensesForDay(context.Background(), 1, day)
	suite.Require().Nil(err)
	suite.Assert().Nil(b)
	suite.Assert().NotNil(expenses)
	suite.Assert().Len(expenses, 0)
}
