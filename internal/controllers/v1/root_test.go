package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/spendbin/backend/internal/controllers/v1"
	"github.com/spendbin/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Budgets:         "http://example.com/v1/budgets",
		Expenses:        "http://example.com/v1/expenses",
		MonthlyExpenses: "http://example.com/v1/monthly-expenses",
		Reconcile:       "http://example.com/v1/reconcile",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/budgets/2024-06-01", "OPTIONS, GET"},
		{"/v1/expenses", "OPTIONS, GET, POST"},
		{"/v1/monthly-expenses", "OPTIONS, GET"},
		{"/v1/monthly-expenses/06-2024", "OPTIONS, GET, POST"},
		{"/v1/reconcile", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestUnauthenticated verifies that all resource endpoints need a token.
func (suite *TestSuiteStandard) TestUnauthenticated() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/budgets"},
		{http.MethodPost, "/v1/budgets"},
		{http.MethodGet, "/v1/budgets/2024-06-01"},
		{http.MethodGet, "/v1/expenses?day=2024-06-01"},
		{http.MethodPost, "/v1/expenses"},
		{http.MethodGet, "/v1/monthly-expenses"},
		{http.MethodGet, "/v1/monthly-expenses/06-2024"},
		{http.MethodPost, "/v1/monthly-expenses/06-2024"},
		{http.MethodPost, "/v1/reconcile"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := test.Request(t, tt.method, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			r = test.Request(t, tt.method, "http://example.com"+tt.path, "", map[string]string{"Authorization": "Bearer not-a-token"})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets", "", test.Authorization(suite.T(), 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
