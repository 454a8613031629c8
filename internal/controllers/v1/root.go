package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbin/backend/internal/httputil"
	"github.com/spendbin/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets         string `json:"budgets" example:"https://example.com/api/v1/budgets"`                  // URL of Budget collection endpoint
	Expenses        string `json:"expenses" example:"https://example.com/api/v1/expenses"`                // URL of Expense collection endpoint
	MonthlyExpenses string `json:"monthlyExpenses" example:"https://example.com/api/v1/monthly-expenses"` // URL of the month bucket list endpoint
	Reconcile       string `json:"reconcile" example:"https://example.com/api/v1/reconcile"`              // URL of the reconciliation endpoint
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:         url + "/v1/budgets",
			Expenses:        url + "/v1/expenses",
			MonthlyExpenses: url + "/v1/monthly-expenses",
			Reconcile:       url + "/v1/reconcile",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
