package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbin/backend/internal/httputil"
	"github.com/spendbin/backend/internal/ledger"
)

const (
	scopeUser = "user"
	scopeAll  = "all"
)

type ReconcileQueryFilter struct {
	Scope string `form:"scope"` // "user" for the budgets of the caller, "all" for all budgets
}

type ReconcileResponse struct {
	Data  *ledger.Report `json:"data"`                                           // The result of the reconciliation
	Error *string        `json:"error" example:"you are not allowed to do this"` // The error, if any occurred
}

// RegisterReconcileRoutes registers the routes for reconciliation with
// the RouterGroup that is passed.
func (co Controller) RegisterReconcileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReconcile)
	co.authenticated(r).POST("", co.Reconcile)
}

// OptionsReconcile returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reconciliation
//	@Success		204
//	@Router			/v1/reconcile [options]
func OptionsReconcile(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Reconcile recomputes the remaining amounts of budgets from their expenses
//
//	@Summary		Reconcile budgets
//	@Description	Sets the remaining amount of every budget in scope to its amount minus the sum of its expenses. The scope "all" needs an admin token.
//	@Tags			Reconciliation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200		{object}	ReconcileResponse
//	@Failure		400		{object}	ReconcileResponse
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		403		{object}	ReconcileResponse
//	@Failure		500		{object}	ReconcileResponse
//	@Param			scope	query		string	false	"Scope of the reconciliation. Defaults to user."	Enums(user, all)
//	@Router			/v1/reconcile [post]
func (co Controller) Reconcile(c *gin.Context) {
	var filter ReconcileQueryFilter
	_ = c.ShouldBindQuery(&filter)

	caller := identity(c)
	scope := ledger.Scope{UserID: caller.UserID}

	switch filter.Scope {
	case "", scopeUser:
	case scopeAll:
		if !caller.Admin {
			c.JSON(status(errForbidden), ReconcileResponse{
				Error: message(errForbidden),
			})
			return
		}
		scope = ledger.Scope{}
	default:
		c.JSON(status(errInvalidScope), ReconcileResponse{
			Error: message(errInvalidScope),
		})
		return
	}

	report, err := co.Ledger.Reconcile(c.Request.Context(), scope)
	if err != nil {
		c.JSON(status(err), ReconcileResponse{
			Error: message(err),
		})
		return
	}

	c.JSON(http.StatusOK, ReconcileResponse{Data: &report})
}
