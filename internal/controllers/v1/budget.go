package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbin/backend/internal/httputil"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.OPTIONS("/:day", OptionsBudgetDetail)

	authed := co.authenticated(r)
	{
		authed.GET("", co.GetBudgets)
		authed.POST("", co.CreateBudget)
		authed.GET("/:day", co.GetBudget)
	}
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsBudgetDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			day	path	string	true	"Day of the budget, formatted as YYYY-MM-DD"
//	@Router			/v1/budgets/{day} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// CreateBudget creates the budget of the caller for a day
//
//	@Summary		Create budget
//	@Description	Creates the budget for a day. Each day can only have one budget.
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		409		{object}	BudgetResponse
//	@Failure		500		{object}	BudgetResponse
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: message(err),
		})
		return
	}

	budget, err := co.Ledger.CreateBudget(c.Request.Context(), identity(c).UserID, editable.Day, *editable.Amount)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: message(err),
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// GetBudgets returns the budgets of the caller
//
//	@Summary		Get budgets
//	@Description	Returns one page of the budgets of the caller, the most recent day first
//	@Tags			Budgets
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200		{object}	BudgetListResponse
//	@Failure		400		{object}	BudgetListResponse
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		500		{object}	BudgetListResponse
//	@Param			page	query		int	false	"The page to return. Defaults to 1."
//	@Param			limit	query		int	false	"Maximum number of budgets to return. Defaults to 10, at most 100."
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	err := c.ShouldBindQuery(&filter)
	if err != nil {
		err = fmt.Errorf("%w: %w", models.ErrValidation, err)
		c.JSON(status(err), BudgetListResponse{
			Error: message(err),
		})
		return
	}

	// Zero selects the defaults in the ledger, an explicit zero is invalid
	var page, limit int
	if filter.Page != nil {
		if *filter.Page < 1 {
			c.JSON(status(errInvalidPage), BudgetListResponse{
				Error: message(errInvalidPage),
			})
			return
		}
		page = *filter.Page
	}

	if filter.Limit != nil {
		if *filter.Limit < 1 {
			c.JSON(status(errInvalidLimit), BudgetListResponse{
				Error: message(errInvalidLimit),
			})
			return
		}
		limit = *filter.Limit
	}

	budgets, pagination, err := co.Ledger.ListBudgets(c.Request.Context(), identity(c).UserID, page, limit)
	if err != nil {
		c.JSON(status(err), BudgetListResponse{
			Error: message(err),
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// GetBudget returns the budget of the caller for a day
//
//	@Summary		Get budget for day
//	@Description	Returns the budget of the caller for the day. The data is null if there is none.
//	@Tags			Budgets
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	BudgetResponse
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		500	{object}	BudgetResponse
//	@Param			day	path		string	true	"Day of the budget, formatted as YYYY-MM-DD"
//	@Router			/v1/budgets/{day} [get]
func (co Controller) GetBudget(c *gin.Context) {
	day, err := types.ParseDay(c.Param("day"))
	if err != nil {
		err = fmt.Errorf("%w: %w", models.ErrValidation, err)
		c.JSON(status(err), BudgetResponse{
			Error: message(err),
		})
		return
	}

	budget, err := co.Ledger.BudgetForDay(c.Request.Context(), identity(c).UserID, day)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: message(err),
		})
		return
	}

	if budget == nil {
		c.JSON(http.StatusOK, BudgetResponse{})
		return
	}

	data := newBudget(c, *budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
