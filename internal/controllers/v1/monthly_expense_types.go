package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/monthly"
	"github.com/spendbin/backend/internal/types"
)

// MonthlyExpenseEditable represents all user configurable parameters
type MonthlyExpenseEditable struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"50"` // The amount spent
	Description string           `json:"description" example:"Electricity"`                           // What the money was spent on
	Date        *time.Time       `json:"date" example:"2024-06-03T08:12:44Z"`                         // When the expense happened. Defaults to now, must be within the month otherwise
}

type MonthlyExpenseLinks struct {
	Month string `json:"month" example:"https://example.com/api/v1/monthly-expenses/06-2024"` // The month bucket of the expense
}

type MonthlyExpense struct {
	models.MonthlyExpense
	Links MonthlyExpenseLinks `json:"links"`
}

func monthURL(c *gin.Context, mid types.MonthID) string {
	return fmt.Sprintf("%s/v1/monthly-expenses/%s", c.GetString(string(models.DBContextURL)), mid)
}

func newMonthlyExpense(c *gin.Context, model models.MonthlyExpense) MonthlyExpense {
	return MonthlyExpense{
		MonthlyExpense: model,
		Links: MonthlyExpenseLinks{
			Month: monthURL(c, model.Mid),
		},
	}
}

type MonthlyExpenseResponse struct {
	Data  *MonthlyExpense `json:"data"`                                              // Data for the monthly expense
	Error *string         `json:"error" example:"the date must be within the month"` // The error, if any occurred
}

// Month is the content of a month bucket.
type Month struct {
	Entries       []MonthlyExpense    `json:"monthlyExpenses"`                               // All expenses of the month, oldest first
	TotalSpend    decimal.Decimal     `json:"totalSpend" swaggertype:"number" example:"125"` // Sum of all expenses of the month
	MaxSpendInDay monthly.MaxSpendDay `json:"maxSpendInDay"`                                 // The day with the highest spending
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                                // Data for the month
	Error *string `json:"error" example:"the request contains invalid data: invalid month id"` // The error, if any occurred
}

type BucketLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/monthly-expenses/06-2024"` // The month bucket
}

type Bucket struct {
	monthly.Bucket
	Links BucketLinks `json:"links"`
}

type BucketListResponse struct {
	Data  []Bucket `json:"data"`                                                                // Totals of all month buckets, most recent first
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
