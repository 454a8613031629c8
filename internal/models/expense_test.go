package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
)

func (suite *TestSuiteStandard) TestExpenseBeforeSave() {
	budget := suite.createTestBudget(models.Budget{UserID: 1, Day: types.NewDay(2024, 6, 1), Amount: decimal.NewFromFloat(500)})

	tz, _ := time.LoadLocation("Europe/Berlin")
	expense := models.Expense{
		UserID:      1,
		BudgetID:    budget.ID,
		Amount:      decimal.NewFromFloat(12.5),
		Description: "  Lunch ",
		Date:        time.Date(2024, 6, 1, 14, 0, 0, 0, tz),
	}
	suite.Require().Nil(models.DB.Create(&expense).Error)

	suite.Assert().Equal("Lunch", expense.Description)
	suite.Assert().Equal(time.UTC, expense.Date.Location())

	var stored models.Expense
	suite.Require().Nil(models.DB.First(&stored, expense.ID).Error)
	suite.Assert().Equal(time.UTC, stored.Date.Location())
	suite.Assert().True(stored.Amount.Equal(decimal.NewFromFloat(12.5)))
}

func (suite *TestSuiteStandard) TestExpenseDateDefaultsToNow() {
	budget := suite.createTestBudget(models.Budget{UserID: 1, Day: types.Today(), Amount: decimal.NewFromFloat(500)})

	expense := models.Expense{UserID: 1, BudgetID: budget.ID, Amount: decimal.NewFromFloat(1), Description: "Gum"}
	suite.Require().Nil(models.DB.Create(&expense).Error)

	suite.Assert().WithinDuration(time.Now(), expense.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	budget := suite.createTestBudget(models.Budget{UserID: 1, Day: types.NewDay(2024, 6, 1), Amount: decimal.NewFromFloat(500)})

	tests := []struct {
		name        string
		amount      decimal.Decimal
		description string
		err         error
	}{
		{"zero amount", decimal.Zero, "Lunch", models.ErrExpenseAmountNotPositive},
		{"negative amount", decimal.NewFromFloat(-3), "Lunch", models.ErrExpenseAmountNotPositive},
		{"empty description", decimal.NewFromFloat(3), "", models.ErrExpenseDescriptionRequired},
		{"whitespace description", decimal.NewFromFloat(3), "   ", models.ErrExpenseDescriptionRequired},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&models.Expense{
				UserID:      1,
				BudgetID:    budget.ID,
				Amount:      tt.amount,
				Description: tt.description,
			}).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthlyExpenseValidation() {
	err := models.DB.Create(&models.MonthlyExpense{
		UserID:      1,
		Mid:         "06-2024",
		Amount:      decimal.Zero,
		Description: "Rent",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive)

	err = models.DB.Create(&models.MonthlyExpense{
		UserID: 1,
		Mid:    "06-2024",
		Amount: decimal.NewFromFloat(800),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseDescriptionRequired)

	m := models.MonthlyExpense{UserID: 1, Mid: "06-2024", Amount: decimal.NewFromFloat(800), Description: "Rent"}
	suite.Require().Nil(models.DB.Create(&m).Error)

	var stored models.MonthlyExpense
	suite.Require().Nil(models.DB.First(&stored, m.ID).Error)
	suite.Assert().Equal(types.MonthID("06-2024"), stored.Mid)
}
