package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetRemainingInitialized() {
	budget := suite.createTestBudget(models.Budget{
		UserID:    1,
		Day:       types.NewDay(2024, 6, 1),
		Amount:    decimal.NewFromFloat(500),
		Remaining: decimal.NewFromFloat(1),
	})

	suite.Assert().True(budget.Remaining.Equal(decimal.NewFromFloat(500)))

	var stored models.Budget
	suite.Require().Nil(models.DB.First(&stored, budget.ID).Error)
	suite.Assert().True(stored.Remaining.Equal(decimal.NewFromFloat(500)), "remaining is %s", stored.Remaining)
	suite.Assert().Equal(types.NewDay(2024, 6, 1), stored.Day)
	suite.Assert().Equal(time.UTC, stored.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestBudgetNegativeAmount() {
	err := models.DB.Create(&models.Budget{
		UserID: 1,
		Day:    types.NewDay(2024, 6, 1),
		Amount: decimal.NewFromFloat(-1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrBudgetAmountNegative)
}

func (suite *TestSuiteStandard) TestBudgetUniquePerUserAndDay() {
	_ = suite.createTestBudget(models.Budget{UserID: 1, Day: types.NewDay(2024, 6, 1), Amount: decimal.NewFromFloat(500)})

	err := models.DB.Create(&models.Budget{UserID: 1, Day: types.NewDay(2024, 6, 1), Amount: decimal.NewFromFloat(20)}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetDayNotUnique)

	// Other users and other days are fine
	suite.Assert().Nil(models.DB.Create(&models.Budget{UserID: 2, Day: types.NewDay(2024, 6, 1), Amount: decimal.NewFromFloat(20)}).Error)
	suite.Assert().Nil(models.DB.Create(&models.Budget{UserID: 1, Day: types.NewDay(2024, 6, 2), Amount: decimal.NewFromFloat(20)}).Error)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where(&models.Budget{UserID: 1}).Where("day = ?", types.NewDay(2024, 6, 1)).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetOverspent() {
	tests := []struct {
		remaining float64
		overspent bool
	}{
		{10, false},
		{0.01, false},
		{0, true},
		{-20, true},
	}

	for _, tt := range tests {
		b := models.Budget{Remaining: decimal.NewFromFloat(tt.remaining)}
		suite.Assert().Equal(tt.overspent, b.Overspent(), "remaining %v", tt.remaining)
	}
}
