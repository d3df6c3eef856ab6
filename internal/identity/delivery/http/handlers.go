package http

import (
	"admin-srv/pkg/response"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// SignIn - Sign in with email and password
// @Summary Sign in
// @Description Checks the credentials, returns a bearer token and sets the session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body signInReq true "Credentials"
// @Success 200 {object} signInResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /api/v1/authentication/login [post]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.SignIn: usecase SignIn failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if h.cfg.CookieName != "" {
		h.setSessionCookie(c, o.Token, o.ExpiresAt)
	}
	response.OK(c, h.newSignInResp(o))
}

// SignOut - Revoke the current token
// @Summary Sign out
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/authentication/logout [post]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	if !sc.IsAuthenticated() {
		response.Error(c, errUnauthorized, h.discord)
		return
	}

	if err := h.uc.SignOut(ctx, sc); err != nil {
		h.l.Errorf(ctx, "identity.delivery.http.SignOut: usecase SignOut failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if h.cfg.CookieName != "" {
		h.clearSessionCookie(c)
	}
	response.OK(c, nil)
}

// ForgotPassword - Send a password reset mail
// @Summary Request a password reset link
// @Description Always succeeds for well formed emails, whether or not an account exists
// @Tags Authentication
// @Accept json
// @Produce json
// @Param lang header string false "Mail language (en, vi)"
// @Param body body forgotPasswordReq true "Email"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /api/v1/authentication/forgot-password [post]
func (h *handler) ForgotPassword(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processForgotPasswordRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.SendPasswordReset(ctx, req.Email); err != nil {
		h.l.Errorf(ctx, "identity.delivery.http.ForgotPassword: usecase SendPasswordReset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// ResetPassword - Set a new password with a reset code
// @Summary Confirm a password reset
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body resetPasswordReq true "Reset code and new password"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/authentication/reset-password [post]
func (h *handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetPasswordRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ConfirmPasswordReset(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.ResetPassword: usecase ConfirmPasswordReset failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// ChangePassword - Change the password of the signed in account
// @Summary Change password
// @Description Re-authenticates with the current password and revokes the current token on success
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body changePasswordReq true "Current and new password"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/authentication/change-password [post]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processChangePasswordRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ChangePassword(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "identity.delivery.http.ChangePassword: usecase ChangePassword failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	if h.cfg.CookieName != "" {
		h.clearSessionCookie(c)
	}
	response.OK(c, nil)
}
