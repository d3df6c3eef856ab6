package http

import (
	"admin-srv/pkg/response"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List - List console users
// @Summary List users
// @Description Email descending by default; search is an email prefix
// @Tags Users
// @Produce json
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param cursor query string false "last_visible of the previous page"
// @Param sort query string false "Sort expression, e.g. email:desc"
// @Param search query string false "Email prefix"
// @Param generation query int false "Echoed back in the response"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/users [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, orders, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	page, err := h.uc.List(ctx, req.toInput(orders))
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(page, req.PageSize))
}

// Create - Create a console user
// @Summary Create user
// @Description manual creates a new account (default password when empty); uid attaches a profile to an existing account. A reset link is mailed in both cases.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body createReq true "User"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/users [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	u, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(u))
}

// Delete - Delete a console user
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/users/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// SendPasswordReset - Mail a reset link to a user
// @Summary Send password reset
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/{id}/reset-password [post]
func (h *handler) SendPasswordReset(c *gin.Context) {
	ctx := c.Request.Context()

	_, id, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.SendPasswordReset(ctx, id); err != nil {
		h.l.Errorf(ctx, "user.delivery.http.SendPasswordReset: usecase SendPasswordReset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// GetProfile - Profile of the signed in user
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} userResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/profile [get]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if !sc.IsAuthenticated() {
		response.Error(c, errUnauthorized, h.discord)
		return
	}

	u, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.GetProfile: usecase GetProfile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(u))
}

// UpdateProfile - Update the names of the signed in user
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body updateProfileReq true "Profile"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/profile [put]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateProfileRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	u, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.UpdateProfile: usecase UpdateProfile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(u))
}
