package middleware

import (
	"strings"

	"admin-srv/pkg/response"
	"admin-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid, unrevoked bearer token from the Authorization
// header or the session cookie.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c, m.cfg.CookieName)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		payload, err := m.verifier.VerifyToken(ctx, tokenString)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, scope.NewScope(payload)))

		c.Next()
	}
}

// BearerToken reads the token from "Authorization: Bearer <token>", a raw
// Authorization header, or the named cookie, in that order.
func BearerToken(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(h[len("Bearer "):])
		}
		return h
	}
	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
