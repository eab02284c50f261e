package v1

import (
	"errors"
	"net/http"

	"github.com/finledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errTransactionPosted) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrMonthExists) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Transaction errors
var (
	errTransactionPosted = errors.New("a posted transaction can no longer be edited")
)

// Month errors
var (
	errMonthNotSetInBody = errors.New("the month must be set in the request body")
)
