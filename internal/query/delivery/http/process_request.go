package http

import (
	"admin-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

func (h *handler) processFetchPageRequest(c *gin.Context) (string, fetchPageReq, error) {
	var req fetchPageReq

	collection := c.Param("collection")
	if !lo.Contains(h.collections, collection) {
		return "", req, errUnknownCollection
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "query.delivery.http.processFetchPageRequest: bind failed: %v", err)
		return "", req, errWrongBody
	}

	cq := paginator.CursorQuery{PageSize: req.Pagination.PageSize, Cursor: req.Pagination.LastVisible}
	if err := cq.Adjust(); err != nil {
		return "", req, errInvalidPageSize
	}
	req.Pagination.PageSize = cq.PageSize

	return collection, req, nil
}
