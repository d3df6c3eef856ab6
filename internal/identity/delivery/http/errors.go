package http

import (
	"errors"
	"net/http"

	"admin-srv/internal/identity"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Wrong body",
	)
	errUnauthorized = pkgErrors.NewHTTPError(
		http.StatusUnauthorized, "Unauthorized",
	)
	errInvalidCredentials = pkgErrors.NewHTTPError(
		http.StatusUnauthorized, "Invalid email or password",
	)
	errProfileNotFound = pkgErrors.NewHTTPError(
		http.StatusForbidden, "No user data found",
	)
	errInvalidEmail = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid email",
	)
	errWeakPassword = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Password must be 8-16 characters with at least one letter and one digit",
	)
	errInvalidResetCode = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Reset link is invalid or has expired",
	)
	errWrongPassword = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Current password is incorrect",
	)
	errAccountNotFound = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Account not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, identity.ErrProfileNotFound):
		return errProfileNotFound
	case errors.Is(err, identity.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, identity.ErrWeakPassword):
		return errWeakPassword
	case errors.Is(err, identity.ErrInvalidResetCode):
		return errInvalidResetCode
	case errors.Is(err, identity.ErrWrongPassword):
		return errWrongPassword
	case errors.Is(err, identity.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, identity.ErrInvalidToken), errors.Is(err, identity.ErrTokenRevoked):
		return errUnauthorized
	default:
		panic(err)
	}
}
