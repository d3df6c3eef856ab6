package middleware

import (
	"context"

	"admin-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// Trace tags the request context with a trace id used by the logger.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)

		ctx := context.WithValue(c.Request.Context(), log.TraceIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
