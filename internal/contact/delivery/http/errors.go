package http

import (
	"errors"
	"net/http"

	"admin-srv/internal/contact"
	"admin-srv/internal/docstore"
	"admin-srv/internal/query"
	pkgErrors "admin-srv/pkg/errors"
)

var (
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
	errExportFailed = pkgErrors.NewHTTPError(
		http.StatusBadGateway, "Export failed",
	)
)

func (h *handler) mapError(err error) error {
	var be *query.BackendError
	switch {
	case errors.Is(err, contact.ErrExportFailed):
		return errExportFailed
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
