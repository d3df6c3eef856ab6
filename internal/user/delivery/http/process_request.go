package http

import (
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	pkgErrors "admin-srv/pkg/errors"
	"admin-srv/pkg/paginator"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, []query.Order, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "user.delivery.http.processListRequest: bind failed: %v", err)
		return req, nil, errWrongQuery
	}

	cq := paginator.CursorQuery{PageSize: req.PageSize, Cursor: req.Cursor}
	if err := cq.Adjust(); err != nil {
		return req, nil, errInvalidPageSize
	}
	req.PageSize = cq.PageSize

	orders, err := query.ParseOrder(req.Sort)
	if err != nil {
		return req, nil, errInvalidSort
	}
	return req, orders, nil
}

func (h *handler) processCreateRequest(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "user.delivery.http.processCreateRequest: bind failed: %v", err)
		if verr := pkgErrors.NewBindingError(err); verr != nil {
			return sc, req, verr
		}
		return sc, req, errWrongBody
	}
	return sc, req, nil
}

func (h *handler) processUpdateProfileRequest(c *gin.Context) (model.Scope, updateProfileReq, error) {
	var req updateProfileReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "user.delivery.http.processUpdateProfileRequest: bind failed: %v", err)
		if verr := pkgErrors.NewBindingError(err); verr != nil {
			return sc, req, verr
		}
		return sc, req, errWrongBody
	}
	return sc, req, nil
}

func (h *handler) processIDRequest(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, "", err
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", errWrongQuery
	}
	return sc, id, nil
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	if !sc.IsAuthenticated() {
		return sc, errUnauthorized
	}
	return sc, nil
}
