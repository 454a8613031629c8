package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendbin/backend/internal/httputil"
	"github.com/spendbin/backend/internal/monthly"
)

// RegisterMonthlyExpenseRoutes registers the routes for monthly expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthlyExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBucketList)
	r.OPTIONS("/:mid", OptionsMonth)

	authed := co.authenticated(r)
	{
		authed.GET("", co.GetBuckets)
		authed.GET("/:mid", co.GetMonth)
		authed.POST("/:mid", co.CreateMonthlyExpense)
	}
}

// OptionsBucketList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Monthly Expenses
//	@Success		204
//	@Router			/v1/monthly-expenses [options]
func OptionsBucketList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsMonth returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Monthly Expenses
//	@Success		204
//	@Param			mid	path	string	true	"Month ID, formatted as MM-YYYY"
//	@Router			/v1/monthly-expenses/{mid} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// CreateMonthlyExpense records an expense in a month bucket
//
//	@Summary		Create monthly expense
//	@Description	Records an expense in the month bucket. Daily budgets are not changed.
//	@Tags			Monthly Expenses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201		{object}	MonthlyExpenseResponse
//	@Failure		400		{object}	MonthlyExpenseResponse
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		500		{object}	MonthlyExpenseResponse
//	@Param			mid		path		string					true	"Month ID, formatted as MM-YYYY"
//	@Param			expense	body		MonthlyExpenseEditable	true	"Monthly expense"
//	@Router			/v1/monthly-expenses/{mid} [post]
func (co Controller) CreateMonthlyExpense(c *gin.Context) {
	var editable MonthlyExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), MonthlyExpenseResponse{
			Error: message(err),
		})
		return
	}

	var date time.Time
	if editable.Date != nil {
		date = *editable.Date
	}

	expense, err := co.Monthly.AddMonthlyExpense(c.Request.Context(), identity(c).UserID, c.Param("mid"), *editable.Amount, editable.Description, date)
	if err != nil {
		c.JSON(status(err), MonthlyExpenseResponse{
			Error: message(err),
		})
		return
	}

	data := newMonthlyExpense(c, expense)
	c.JSON(http.StatusCreated, MonthlyExpenseResponse{Data: &data})
}

// GetMonth returns the expenses of a month bucket with their total
//
//	@Summary		Get month
//	@Description	Returns all expenses of the month bucket, their total and the day with the highest spending
//	@Tags			Monthly Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	MonthResponse
//	@Failure		400	{object}	MonthResponse
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		500	{object}	MonthResponse
//	@Param			mid	path		string	true	"Month ID, formatted as MM-YYYY"
//	@Router			/v1/monthly-expenses/{mid} [get]
func (co Controller) GetMonth(c *gin.Context) {
	total, err := co.Monthly.MonthlyTotal(c.Request.Context(), identity(c).UserID, c.Param("mid"))
	if err != nil {
		c.JSON(status(err), MonthResponse{
			Error: message(err),
		})
		return
	}

	data := Month{
		Entries:       make([]MonthlyExpense, 0, len(total.Entries)),
		TotalSpend:    total.TotalSpend,
		MaxSpendInDay: monthly.MaxSpendDayOf(total.Entries),
	}

	for _, e := range total.Entries {
		data.Entries = append(data.Entries, newMonthlyExpense(c, e))
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// GetBuckets returns the totals of all month buckets of the caller
//
//	@Summary		Get month buckets
//	@Description	Returns the total of every month bucket of the caller, the most recent month first
//	@Tags			Monthly Expenses
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	BucketListResponse
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		500	{object}	BucketListResponse
//	@Router			/v1/monthly-expenses [get]
func (co Controller) GetBuckets(c *gin.Context) {
	buckets, err := co.Monthly.ListBucketsWithTotals(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.JSON(status(err), BucketListResponse{
			Error: message(err),
		})
		return
	}

	data := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, Bucket{
			Bucket: b,
			Links:  BucketLinks{Self: monthURL(c, b.Mid)},
		})
	}

	c.JSON(http.StatusOK, BucketListResponse{Data: data})
}
