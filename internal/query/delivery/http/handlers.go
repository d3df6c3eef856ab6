package http

import (
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// FetchPage - Run a composed query against a collection
// @Summary Fetch a page of a collection
// @Description Applies filters, ordering, prefix search and cursor pagination and returns the page with the total count
// @Tags Query
// @Accept json
// @Produce json
// @Param collection path string true "Collection name (Users, Contacts)"
// @Param body body fetchPageReq true "Query options"
// @Success 200 {object} pageResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/query/{collection} [post]
func (h *handler) FetchPage(c *gin.Context) {
	ctx := c.Request.Context()

	collection, req, err := h.processFetchPageRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	page, err := h.uc.FetchPage(ctx, collection, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "query.delivery.http.FetchPage: usecase FetchPage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPageResp(page, req.Pagination.PageSize))
}
