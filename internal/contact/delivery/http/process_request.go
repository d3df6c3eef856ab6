package http

import (
	"admin-srv/internal/model"
	"admin-srv/internal/query"
	"admin-srv/pkg/paginator"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, []query.Order, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "contact.delivery.http.processListRequest: bind failed: %v", err)
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

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	if !sc.IsAuthenticated() {
		return sc, errUnauthorized
	}
	return sc, nil
}
