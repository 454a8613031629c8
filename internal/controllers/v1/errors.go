package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spendbin/backend/internal/ledger"
	"github.com/spendbin/backend/internal/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, ledger.ErrConsistency) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrDuplicateBudget) {
		return http.StatusConflict
	}

	if errors.Is(err, errForbidden) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// message returns the error message shown to users.
func message(err error) *string {
	// The cause is logged by the ledger
	if errors.Is(err, ledger.ErrConsistency) {
		err = ledger.ErrConsistency
	}

	s := err.Error()
	return &s
}

var (
	errDayNotSetInQuery = errors.New("the day query parameter must be set")
	errForbidden        = errors.New("you are not allowed to do this")
	errInvalidScope     = errors.New("the scope must be one of 'user' or 'all'")
	errInvalidPage      = fmt.Errorf("%w: page must be 1 or greater", models.ErrValidation)
	errInvalidLimit     = fmt.Errorf("%w: limit must be between 1 and %d", models.ErrValidation, ledger.MaxPageSize)
)
