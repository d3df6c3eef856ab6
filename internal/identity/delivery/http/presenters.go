package http

import (
	"time"

	"admin-srv/internal/identity"
	"admin-srv/internal/model"

	"github.com/gin-gonic/gin"
)

type signInReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r signInReq) toInput() identity.SignInInput {
	return identity.SignInInput{Email: r.Email, Password: r.Password}
}

type forgotPasswordReq struct {
	Email string `json:"email" binding:"required"`
}

type resetPasswordReq struct {
	OobCode     string `json:"oob_code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (r resetPasswordReq) toInput() identity.ConfirmPasswordResetInput {
	return identity.ConfirmPasswordResetInput{Code: r.OobCode, NewPassword: r.NewPassword}
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (r changePasswordReq) toInput() identity.ChangePasswordInput {
	return identity.ChangePasswordInput{CurrentPassword: r.CurrentPassword, NewPassword: r.NewPassword}
}

type userResp struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}

type signInResp struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	User      userResp `json:"user"`
}

func (h *handler) newSignInResp(o identity.SignInOutput) signInResp {
	return signInResp{
		Token:     o.Token,
		ExpiresAt: o.ExpiresAt.Unix(),
		User:      newUserResp(o.User),
	}
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		CreatedAt: u.CreatedAt,
	}
}

func (h *handler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cfg.CookieName, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}
