package test

import (
	"fmt"
	"testing"
	"time"

	"github.com/spendbin/backend/internal/auth"
	"github.com/stretchr/testify/require"
)

// Secret is the JWT signing secret used in all tests.
const Secret = "spendbin-test-secret-do-not-use-anywhere-else"

// Tokens returns the token manager used for tests.
func Tokens(t *testing.T) *auth.Manager {
	m, err := auth.NewManager(Secret, time.Hour)
	require.Nil(t, err)

	return m
}

// Authorization returns the HTTP headers to authenticate as the user.
func Authorization(t *testing.T, userID uint64) map[string]string {
	return authorization(t, userID, false)
}

// AdminAuthorization returns the HTTP headers to authenticate as an admin user.
func AdminAuthorization(t *testing.T, userID uint64) map[string]string {
	return authorization(t, userID, true)
}

func authorization(t *testing.T, userID uint64, admin bool) map[string]string {
	token, err := Tokens(t).GenerateToken(userID, admin)
	require.Nil(t, err)

	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token)}
}
