package http

import (
	"errors"
	"net/http"

	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
	pkgErrors "admin-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Wrong body",
	)
	errUnknownCollection = pkgErrors.NewHTTPError(
		http.StatusNotFound, "Collection not found",
	)
	errInvalidPageSize = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Page size must be positive",
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
)

func (h *handler) mapError(err error) error {
	var be *query.BackendError
	switch {
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
	case errors.As(err, &be):
		return errBackend
	default:
		panic(err)
	}
}
