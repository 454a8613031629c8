package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/ledger"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	day := types.NewDay(2024, time.June, 1)
	budget := suite.createTestBudget(1, day, 500)

	suite.Assert().NotZero(budget.ID)
	suite.Assert().Equal(uint64(1), budget.UserID)
	suite.Assert().True(day.Equal(budget.Day))
	suite.Assert().True(decimal.NewFromFloat(500).Equal(budget.Amount))
	suite.Assert().True(budget.Amount.Equal(budget.Remaining), "remaining must start at the amount")
	suite.Assert().False(budget.NeedsReconciliation)

	suite.assertRemaining(budget, 500)
}

func (suite *TestSuiteStandard) TestCreateBudgetDefaultsToToday() {
	budget := suite.createTestBudget(1, types.Day{}, 20)
	suite.Assert().True(types.Today().Equal(budget.Day))
}

func (suite *TestSuiteStandard) TestCreateBudgetZeroAmount() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 0)
	suite.Assert().True(budget.Remaining.IsZero())
	suite.Assert().True(budget.Overspent())
}

// TestCreateBudgetDuplicateDay verifies that a user can only have one budget per day.
func (suite *TestSuiteStandard) TestCreateBudgetDuplicateDay() {
	day := types.NewDay(2024, time.June, 1)
	first := suite.createTestBudget(1, day, 500)

	_, err := suite.ledger.CreateBudget(context.Background(), 1, day, decimal.NewFromFloat(300))
	suite.Assert().ErrorIs(err, ledger.ErrDuplicateBudget)

	var count int64
	models.DB.Model(&models.Budget{}).Where("user_id = ?", 1).Count(&count)
	suite.Assert().Equal(int64(1), count)

	// The existing budget is left untouched
	suite.assertRemaining(first, 500)

	// Another user can have a budget for the same day
	_ = suite.createTestBudget(2, day, 300)
}

// TestCreateBudgetConcurrent verifies that concurrent requests to set the
// budget of a day create exactly one budget.
func (suite *TestSuiteStandard) TestCreateBudgetConcurrent() {
	day := types.NewDay(2024, time.June, 1)
	callers := 10

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.ledger.CreateBudget(context.Background(), 1, day, decimal.NewFromInt(int64(100+i)))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created, duplicates := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			created++
		case assert.ErrorIs(suite.T(), err, ledger.ErrDuplicateBudget):
			duplicates++
		}
	}

	suite.Assert().Equal(1, created)
	suite.Assert().Equal(callers-1, duplicates)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where("user_id = ? AND day = ?", 1, day).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalid() {
	tests := []struct {
		name   string
		amount decimal.Decimal
		err    error
	}{
		{"Negative", decimal.NewFromFloat(-1), models.ErrValidation},
		{"Too large", models.DefaultMaxAmount.Add(decimal.NewFromInt(1)), models.ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.CreateBudget(context.Background(), 1, types.NewDay(2024, time.June, 1), tt.amount)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	var count int64
	models.DB.Model(&models.Budget{}).Count(&count)
	suite.Assert().Zero(count, "no budget may be created from invalid input")
}

func (suite *TestSuiteStandard) TestCreateBudgetMaxAmount() {
	l := ledger.New(models.DB, decimal.NewFromInt(100))
	suite.Assert().True(decimal.NewFromInt(100).Equal(l.MaxAmount()))

	_, err := l.CreateBudget(context.Background(), 1, types.NewDay(2024, time.June, 1), decimal.NewFromInt(100))
	suite.Assert().Nil(err)

	_, err = l.CreateBudget(context.Background(), 1, types.NewDay(2024, time.June, 2), decimal.NewFromFloat(100.01))
	suite.Assert().ErrorIs(err, models.ErrAmountOutOfRange)
}

func (suite *TestSuiteStandard) TestCreateBudgetDBClosed() {
	suite.CloseDB()

	_, err := suite.ledger.CreateBudget(context.Background(), 1, types.NewDay(2024, time.June, 1), decimal.NewFromInt(10))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestBudgetForDay() {
	day := types.NewDay(2024, time.June, 1)
	budget := suite.createTestBudget(1, day, 500)
	_ = suite.createTestBudget(1, day.Next(), 200)
	_ = suite.createTestBudget(2, day, 300)

	found, err := suite.ledger.BudgetForDay(context.Background(), 1, day)
	suite.Require().Nil(err)
	suite.Require().NotNil(found)
	suite.Assert().Equal(budget.ID, found.ID)

	found, err = suite.ledger.BudgetForDay(context.Background(), 1, day.AddDays(-1))
	suite.Require().Nil(err)
	suite.Assert().Nil(found, "no budget exists for the day before")

	found, err = suite.ledger.BudgetForDay(context.Background(), 3, day)
	suite.Require().Nil(err)
	suite.Assert().Nil(found, "budgets of other users must not be visible")
}

func (suite *TestSuiteStandard) TestBudgetOwnership() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 500)

	b, err := suite.ledger.Budget(context.Background(), budget.ID, 1)
	suite.Require().Nil(err)
	suite.Assert().Equal(budget.ID, b.ID)

	_, err = suite.ledger.Budget(context.Background(), budget.ID, 2)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetNotFound)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.ledger.Budget(context.Background(), 9999, 1)
	suite.Assert().ErrorIs(err, ledger.ErrBudgetNotFound)
}

func (suite *TestSuiteStandard) TestListBudgets() {
	day := types.NewDay(2024, time.June, 1)
	for i := 0; i < 12; i++ {
		_ = suite.createTestBudget(1, day.AddDays(i), 100)
	}
	_ = suite.createTestBudget(2, day, 100)

	budgets, pagination, err := suite.ledger.ListBudgets(context.Background(), 1, 0, 0)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, ledger.DefaultPageSize)
	suite.Assert().Equal(ledger.Pagination{Page: 1, Limit: 10, Total: 12, TotalPages: 2, HasMore: true}, pagination)
	suite.Assert().True(day.AddDays(11).Equal(budgets[0].Day), "most recent day must come first")

	budgets, pagination, err = suite.ledger.ListBudgets(context.Background(), 1, 2, 10)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 2)
	suite.Assert().False(pagination.HasMore)
	suite.Assert().True(day.Equal(budgets[1].Day))

	budgets, pagination, err = suite.ledger.ListBudgets(context.Background(), 3, 1, 5)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)
	suite.Assert().NotNil(budgets)
	suite.Assert().Equal(0, pagination.TotalPages)
	suite.Assert().False(pagination.HasMore)
}

func (suite *TestSuiteStandard) TestListBudgetsInvalid() {
	tests := []struct {
		name  string
		page  int
		limit int
	}{
		{"Negative page", -1, 10},
		{"Negative limit", 1, -5},
		{"Limit too large", 1, ledger.MaxPageSize + 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, _, err := suite.ledger.ListBudgets(context.Background(), 1, tt.page, tt.limit)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

// TestDecrementRemaining verifies that the remaining amount has no floor at zero.
func (suite *TestSuiteStandard) TestDecrementRemaining() {
	budget := suite.createTestBudget(1, types.NewDay(2024, time.June, 1), 100)

	b, err := suite.ledger.DecrementRemaining(context.Background(), budget.ID, 1, decimal.NewFromFloat(60))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(40).Equal(b.Remaining))

	b, err = suite.ledger.DecrementRemaining(context.Background(), budget.ID, 1, decimal.NewFromFloat(60))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(-20).Equal(b.Remaining))
	suite.assertRemaining(budget, -20)

	b, err = suite.ledger.AdjustRemaining(context.Background(), budget.ID, 1, decimal.NewFromFloat(25.5))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(5.5).Equal(b.Remaining))

	_, err = suite.ledger.DecrementRemaining(context.Background(), budget.ID, 2, decimal.NewFromFloat(1))
	suite.Assert().ErrorIs(err, ledger.ErrBudgetNotFound)
	suite.assertRemaining(budget, 5.5)
}
