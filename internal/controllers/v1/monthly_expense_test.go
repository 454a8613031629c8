package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/spendbin/backend/internal/controllers/v1"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestMonthlyExpense(userID uint64, mid string, body map[string]any) v1.MonthlyExpense {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/monthly-expenses/"+mid, body, test.Authorization(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.MonthlyExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestMonthlyTotal() {
	suite.createTestMonthlyExpense(1, "06-2024", map[string]any{"amount": 50, "description": "Electricity", "date": "2024-06-03T08:00:00Z"})
	suite.createTestMonthlyExpense(1, "06-2024", map[string]any{"amount": 75, "description": "Internet", "date": "2024-06-10T08:00:00Z"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/monthly-expenses/06-2024", "", test.Authorization(suite.T(), 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(decimal.NewFromInt(125).Equal(response.Data.TotalSpend))
	suite.Require().Len(response.Data.Entries, 2)
	suite.Assert().Equal("Electricity", response.Data.Entries[0].Description)
	suite.Assert().Equal("http://example.com/v1/monthly-expenses/06-2024", response.Data.Entries[0].Links.Month)

	suite.Require().NotNil(response.Data.MaxSpendInDay.Date)
	suite.Assert().Equal("2024-06-10", response.Data.MaxSpendInDay.Date.String())
	suite.Assert().True(decimal.NewFromInt(75).Equal(response.Data.MaxSpendInDay.Amount))
}

func (suite *TestSuiteStandard) TestMonthlyTotalEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/monthly-expenses/01-2020", "", test.Authorization(suite.T(), 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.TotalSpend.IsZero())
	suite.Assert().Len(response.Data.Entries, 0)
	suite.Assert().Nil(response.Data.MaxSpendInDay.Date)
}

// TestMonthlyExpenseDoesNotChangeBudgets verifies that monthly expenses are
// tracked independently of daily budgets.
func (suite *TestSuiteStandard) TestMonthlyExpenseDoesNotChangeBudgets() {
	budget := suite.createTestBudget(1, "2024-06-03", 500)
	suite.createTestMonthlyExpense(1, "06-2024", map[string]any{"amount": 50, "description": "Electricity", "date": "2024-06-03T08:00:00Z"})

	var stored models.Budget
	suite.Require().Nil(models.DB.First(&stored, budget.ID).Error)
	suite.Assert().True(decimal.NewFromInt(500).Equal(stored.Remaining))
}

func (suite *TestSuiteStandard) TestCreateMonthlyExpenseInvalid() {
	tests := []struct {
		name string
		mid  string
		body any
	}{
		{"Empty body", "06-2024", ""},
		{"Missing amount", "06-2024", map[string]any{"description": "Rent"}},
		{"Zero amount", "06-2024", map[string]any{"amount": 0, "description": "Rent"}},
		{"Blank description", "06-2024", map[string]any{"amount": 10, "description": " "}},
		{"Invalid month", "13-2024", map[string]any{"amount": 10, "description": "Rent"}},
		{"Wrong format", "2024-06", map[string]any{"amount": 10, "description": "Rent"}},
		{"Date outside month", "06-2024", map[string]any{"amount": 10, "description": "Rent", "date": "2024-07-01T00:00:00Z"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/monthly-expenses/"+tt.mid, tt.body, test.Authorization(t, 1))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestGetMonthInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/monthly-expenses/6-2024", "", test.Authorization(suite.T(), 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "MM-YYYY")
}

func (suite *TestSuiteStandard) TestGetBuckets() {
	suite.createTestMonthlyExpense(1, "01-2024", map[string]any{"amount": 10, "description": "A", "date": "2024-01-15T00:00:00Z"})
	suite.createTestMonthlyExpense(1, "12-2023", map[string]any{"amount": 20, "description": "B", "date": "2023-12-15T00:00:00Z"})
	suite.createTestMonthlyExpense(1, "06-2024", map[string]any{"amount": 30, "description": "C", "date": "2024-06-15T00:00:00Z"})
	suite.createTestMonthlyExpense(1, "06-2024", map[string]any{"amount": 5, "description": "D", "date": "2024-06-16T00:00:00Z"})
	suite.createTestMonthlyExpense(2, "05-2024", map[string]any{"amount": 99, "description": "Other user", "date": "2024-05-01T00:00:00Z"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/monthly-expenses", "", test.Authorization(suite.T(), 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("06-2024", string(response.Data[0].Mid))
	suite.Assert().True(decimal.NewFromInt(35).Equal(response.Data[0].TotalSpend))
	suite.Assert().Equal("http://example.com/v1/monthly-expenses/06-2024", response.Data[0].Links.Self)
	suite.Assert().Equal("01-2024", string(response.Data[1].Mid))
	suite.Assert().Equal("12-2023", string(response.Data[2].Mid))
}

func (suite *TestSuiteStandard) TestGetBucketsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/monthly-expenses", "", test.Authorization(suite.T(), 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
