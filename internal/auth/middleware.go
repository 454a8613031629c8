package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendbin/backend/internal/httputil"
)

const identityKey = "sb-identity"

var ErrMissingToken = errors.New("the request must carry an Authorization header with a bearer token")

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uint64
	Admin  bool
}

// Middleware rejects requests without a valid bearer token and stores the
// Identity of the caller in the context.
func Middleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			httputil.NewError(c, http.StatusUnauthorized, ErrMissingToken)
			return
		}

		claims, err := m.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")
			httputil.NewError(c, http.StatusUnauthorized, ErrInvalidToken)
			return
		}

		// ValidateToken already verified the subject
		userID, _ := claims.UserID()

		c.Set(identityKey, Identity{UserID: userID, Admin: claims.Admin})
		c.Next()
	}
}

// FromContext returns the Identity set by Middleware.
func FromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}

	identity, ok := v.(Identity)
	return identity, ok
}
