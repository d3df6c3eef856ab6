package http

import (
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List - List contact form messages
// @Summary List contacts
// @Description Newest first by default
// @Tags Contacts
// @Produce json
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param cursor query string false "last_visible of the previous page"
// @Param sort query string false "Sort expression, e.g. createdAt:desc"
// @Param generation query int false "Echoed back in the response"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/contacts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, orders, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	page, err := h.uc.List(ctx, req.toInput(orders))
	if err != nil {
		h.l.Errorf(ctx, "contact.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(page, req.PageSize))
}

// Delete - Delete a contact
// @Summary Delete contact
// @Tags Contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/contacts/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "contact.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// Export - Export all contacts as CSV
// @Summary Export contacts
// @Description Writes every contact to a CSV object and returns a download link valid for one hour
// @Tags Contacts
// @Produce json
// @Success 200 {object} exportResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/contacts/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "contact.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}
