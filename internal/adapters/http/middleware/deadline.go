package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Deadline bounds each request's context by timeout. Handlers and the
// store see the deadline through ctx; the error mapper turns an expired
// deadline into 504. Paths with any of skipPrefixes are left unbounded.
func Deadline(timeout time.Duration, skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 || hasAnyPrefix(c.Request.URL.Path, skipPrefixes) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
