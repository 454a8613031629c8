package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	BudgetID    uint64           `json:"budgetId" binding:"required" example:"42"`                     // ID of the budget the expense is recorded against
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"120"` // The amount spent
	Description string           `json:"description" example:"Lunch"`                                  // What the money was spent on
}

type ExpenseLinks struct {
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/2024-06-01"` // The budget of the expense
}

type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense, budget models.Budget) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, budget.Day),
		},
	}
}

// ExpenseCreated is the recorded expense together with the remaining
// amount of its budget after the expense.
type ExpenseCreated struct {
	Expense         Expense         `json:"expense"`
	RemainingBudget decimal.Decimal `json:"remainingBudget" swaggertype:"number" example:"380"`
}

type ExpenseCreateResponse struct {
	Data  *ExpenseCreated `json:"data"`                                        // The expense and the remaining budget
	Error *string         `json:"error" example:"the amount must be positive"` // The error, if any occurred
}

// ExpenseList is the list of expenses of a day.
type ExpenseList struct {
	Expenses        []Expense        `json:"expenses"`                                           // Expenses of the day, newest first
	RemainingBudget *decimal.Decimal `json:"remainingBudget" swaggertype:"number" example:"380"` // Remaining amount of the budget of the day. null if there is no budget
}

type ExpenseListResponse struct {
	Data  *ExpenseList `json:"data"`                                                // The expenses of the day
	Error *string      `json:"error" example:"the day query parameter must be set"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Day string `form:"day"` // The day, formatted as YYYY-MM-DD
}
