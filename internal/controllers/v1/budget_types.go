package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/ledger"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"500"` // The amount that can be spent on the day
	Day    types.Day        `json:"day" swaggertype:"string" example:"2024-06-01"`                // The day of the budget. Defaults to today
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/2024-06-01"`          // The budget itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?day=2024-06-01"` // Expenses recorded against the budget
}

type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.Day),
			Expenses: fmt.Sprintf("%s/v1/expenses?day=%s", url, model.Day),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                 // Data for the budget
	Error *string `json:"error" example:"a budget for this day already exists"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []Budget           `json:"data"`                                            // List of budgets
	Error      *string            `json:"error" example:"limit must be between 1 and 100"` // The error, if any occurred
	Pagination *ledger.Pagination `json:"pagination"`                                      // Pagination information
}

type BudgetQueryFilter struct {
	Page  *int `form:"page"`  // The page to return, starting at 1
	Limit *int `form:"limit"` // Maximum number of budgets per page
}
