package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbin/backend/internal/httputil"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpenseList)

	authed := co.authenticated(r)
	{
		authed.GET("", co.GetExpenses)
		authed.POST("", co.CreateExpense)
	}
}

// OptionsExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// CreateExpense records an expense against a budget
//
//	@Summary		Create expense
//	@Description	Records an expense against a budget of the caller and decreases the remaining amount of the budget
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201		{object}	ExpenseCreateResponse
//	@Failure		400		{object}	ExpenseCreateResponse
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		404		{object}	ExpenseCreateResponse
//	@Failure		500		{object}	ExpenseCreateResponse
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), ExpenseCreateResponse{
			Error: message(err),
		})
		return
	}

	expense, budget, err := co.Ledger.AddExpense(c.Request.Context(), identity(c).UserID, editable.BudgetID, *editable.Amount, editable.Description)
	if err != nil {
		c.JSON(status(err), ExpenseCreateResponse{
			Error: message(err),
		})
		return
	}

	c.JSON(http.StatusCreated, ExpenseCreateResponse{
		Data: &ExpenseCreated{
			Expense:         newExpense(c, expense, budget),
			RemainingBudget: budget.Remaining,
		},
	})
}

// GetExpenses returns the expenses of the caller for a day
//
//	@Summary		Get expenses
//	@Description	Returns the expenses recorded against the budget of the caller for the day and the remaining amount of that budget
//	@Tags			Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	ExpenseListResponse
//	@Failure		400	{object}	ExpenseListResponse
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		500	{object}	ExpenseListResponse
//	@Param			day	query		string	true	"Day, formatted as YYYY-MM-DD"
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	if filter.Day == "" {
		c.JSON(status(errDayNotSetInQuery), ExpenseListResponse{
			Error: message(errDayNotSetInQuery),
		})
		return
	}

	day, err := types.ParseDay(filter.Day)
	if err != nil {
		err = fmt.Errorf("%w: %w", models.ErrValidation, err)
		c.JSON(status(err), ExpenseListResponse{
			Error: message(err),
		})
		return
	}

	expenses, budget, err := co.Ledger.ExpensesForDay(c.Request.Context(), identity(c).UserID, day)
	if err != nil {
		c.JSON(status(err), ExpenseListResponse{
			Error: message(err),
		})
		return
	}

	data := ExpenseList{
		Expenses: make([]Expense, 0, len(expenses)),
	}

	if budget != nil {
		data.RemainingBudget = &budget.Remaining

		for _, expense := range expenses {
			data.Expenses = append(data.Expenses, newExpense(c, expense, *budget))
		}
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: &data})
}
