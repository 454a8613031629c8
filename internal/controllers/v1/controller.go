package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendbin/backend/internal/auth"
	"github.com/spendbin/backend/internal/ledger"
	"github.com/spendbin/backend/internal/monthly"
	"gorm.io/gorm"
)

// Controller holds the services the v1 API handlers work with.
type Controller struct {
	Ledger  *ledger.Ledger
	Monthly *monthly.Aggregator
	Tokens  *auth.Manager
}

// New returns a Controller for the database. Amounts above maxAmount are rejected.
func New(db *gorm.DB, tokens *auth.Manager, maxAmount decimal.Decimal) Controller {
	return Controller{
		Ledger:  ledger.New(db, maxAmount),
		Monthly: monthly.New(db, maxAmount),
		Tokens:  tokens,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)

	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterMonthlyExpenseRoutes(r.Group("/monthly-expenses"))
	co.RegisterReconcileRoutes(r.Group("/reconcile"))
}

// authenticated returns a group for the routes that need a bearer token.
func (co Controller) authenticated(r *gin.RouterGroup) *gin.RouterGroup {
	return r.Group("", auth.Middleware(co.Tokens))
}

// identity returns the caller of the request. It must only be called from
// handlers registered on an authenticated group.
func identity(c *gin.Context) auth.Identity {
	i, _ := auth.FromContext(c)
	return i
}
