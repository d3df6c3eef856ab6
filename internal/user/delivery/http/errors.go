package http

import (
	"errors"
	"net/http"

	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/query"
	"admin-srv/internal/user"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Wrong body",
	)
	errWrongQuery = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Wrong query",
	)
	errUnauthorized = pkgErrors.NewHTTPError(
		http.StatusUnauthorized, "Unauthorized",
	)
	errInvalidPageSize = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Page size must be positive",
	)
	errInvalidSort = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid sort",
	)
	errInvalidQuery = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid query",
	)
	errInvalidCursor = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid cursor",
	)
	errPermissionDenied = pkgErrors.NewHTTPError(
		http.StatusForbidden, "Permission denied",
	)
	errBackend = pkgErrors.NewHTTPError(
		http.StatusBadGateway, "Document store unavailable",
	)
	errUserNotFound = pkgErrors.NewHTTPError(
		http.StatusNotFound, "User not found",
	)
	errUserExists = pkgErrors.NewHTTPError(
		http.StatusConflict, "User already exists",
	)
	errEmailTaken = pkgErrors.NewHTTPError(
		http.StatusConflict, "Email already registered",
	)
	errAccountNotFound = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Account not found",
	)
	errInvalidName = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid name",
	)
	errInvalidUserName = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid user name",
	)
	errInvalidEmail = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Invalid email",
	)
	errWeakPassword = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Password must be 8-16 characters with at least one letter and one digit",
	)
	errUIDRequired = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "UID is required",
	)
	errInvalidCreateType = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Type must be manual or uid",
	)
	errCannotDeleteSelf = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "You cannot delete yourself",
	)
)

func (h *handler) mapError(err error) error {
	var be *query.BackendError
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, user.ErrUserExists):
		return errUserExists
	case errors.Is(err, user.ErrInvalidName):
		return errInvalidName
	case errors.Is(err, user.ErrInvalidUserName):
		return errInvalidUserName
	case errors.Is(err, user.ErrUIDRequired):
		return errUIDRequired
	case errors.Is(err, user.ErrInvalidCreateType):
		return errInvalidCreateType
	case errors.Is(err, user.ErrCannotDeleteSelf):
		return errCannotDeleteSelf
	case errors.Is(err, identity.ErrEmailTaken):
		return errEmailTaken
	case errors.Is(err, identity.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, identity.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, identity.ErrWeakPassword):
		return errWeakPassword
	case errors.Is(err, query.ErrInvalidPageSize):
		return errInvalidPageSize
	case query.IsValidationError(err):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, docstore.ErrInvalidCursor):
		return errInvalidCursor
	case errors.Is(err, docstore.ErrInvalidQuery):
		return errInvalidQuery
	case errors.Is(err, docstore.ErrPermissionDenied):
		return errPermissionDenied
	case errors.As(err, &be), errors.Is(err, docstore.ErrUnavailable):
		return errBackend
	default:
		panic(err)
	}
}
