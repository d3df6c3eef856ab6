package http

import (
	"admin-srv/internal/model"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSignInRequest(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processSignInRequest: bind failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processForgotPasswordRequest(c *gin.Context) (forgotPasswordReq, error) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processForgotPasswordRequest: bind failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processResetPasswordRequest(c *gin.Context) (resetPasswordReq, error) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processResetPasswordRequest: bind failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processChangePasswordRequest(c *gin.Context) (model.Scope, changePasswordReq, error) {
	var req changePasswordReq
	sc := scope.GetScopeFromContext(c.Request.Context())
	if !sc.IsAuthenticated() {
		return sc, req, errUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "identity.delivery.http.processChangePasswordRequest: bind failed: %v", err)
		return sc, req, errWrongBody
	}
	return sc, req, nil
}
