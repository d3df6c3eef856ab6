package middleware

import (
	"admin-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale stores the request language in the context for mail rendering and
// echoes it back as Content-Language. The "lang" header wins over Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langHeader := c.GetHeader("lang")
		if langHeader == "" {
			langHeader = c.GetHeader("Accept-Language")
		}

		lang := locale.ParseLang(langHeader)
		c.Request = c.Request.WithContext(locale.SetLocaleToContext(c.Request.Context(), lang))
		c.Header("Content-Language", lang)

		c.Next()
	}
}
