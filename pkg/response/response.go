package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"admin-srv/pkg/discord"
	pkgErrors "admin-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes err as an error envelope. HTTPError and validation errors keep
// their own status; anything else becomes a 500 and is reported to discord.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var collector *pkgErrors.ValidationErrorCollector
	if errors.As(err, &collector) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Validation failed",
			Errors:    collector.Errors(),
		})
		return
	}

	report(c, d, "Internal error", err, nil)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternal,
		Message:   "Something went wrong",
	})
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests writes a 429 envelope.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}

// PanicError writes a 500 envelope for a recovered panic value and reports it
// to discord together with the goroutine stack.
func PanicError(c *gin.Context, v any, stack []byte, d discord.IDiscord) {
	if err, ok := v.(error); ok {
		var httpErr *pkgErrors.HTTPError
		if errors.As(err, &httpErr) {
			Error(c, httpErr, d)
			return
		}
	}

	report(c, d, "Panic recovered", fmt.Errorf("panic: %v", v), stack)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternal,
		Message:   "Something went wrong",
	})
}

func report(c *gin.Context, d discord.IDiscord, title string, err error, stack []byte) {
	if d == nil {
		return
	}
	desc := c.Request.Method + " " + c.Request.URL.Path
	if len(stack) > 0 {
		desc += "\n```\n" + string(stack) + "\n```"
	}
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = d.SendError(ctx, title, desc, err)
	}()
}
