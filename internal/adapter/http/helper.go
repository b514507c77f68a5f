package http

import (
	"errors"
	"net/http"
	"strings"

	bundleDomain "bundle-backend/internal/domain/bundle"
	depositDomain "bundle-backend/internal/domain/deposit"
	loanDomain "bundle-backend/internal/domain/loan"
	storyDomain "bundle-backend/internal/domain/story"
	userDomain "bundle-backend/internal/domain/user"
	loanUC "bundle-backend/internal/usecase/loan"
)

// statusFor maps domain errors to HTTP status codes; anything unmapped is
// treated as an upstream failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, bundleDomain.ErrNotFound),
		errors.Is(err, storyDomain.ErrNotFound),
		errors.Is(err, depositDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, userDomain.ErrInsufficientBalance),
		errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrAlreadyPaid),
		errors.Is(err, loanUC.ErrBelowMinInstallment),
		errors.Is(err, loanUC.ErrExceedsRemaining),
		errors.Is(err, bundleDomain.ErrEmptyLoanSet),
		errors.Is(err, bundleDomain.ErrInvalidMargin),
		errors.Is(err, bundleDomain.ErrMissingLoan),
		errors.Is(err, bundleDomain.ErrUndefinedDefaultRate),
		errors.Is(err, depositDomain.ErrAlreadyApplied):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
