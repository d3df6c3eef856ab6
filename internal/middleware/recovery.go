package middleware

import (
	"runtime/debug"

	"admin-srv/pkg/discord"
	"admin-srv/pkg/log"
	"admin-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 envelope. Unmapped usecase errors
// reach it through the delivery mapError panic; HTTPError panics keep their status.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			stack := debug.Stack()
			logger.Errorf(ctx, "middleware.Recovery: %v | %s %s\n%s",
				rec, c.Request.Method, c.Request.URL.Path, stack)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, rec, stack, discordClient)
			c.Abort()
		}()
		c.Next()
	}
}
