package middleware

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		log.LogRequest(c.Request.Context(), c.Request.Method, path, status, time.Since(start))

		if status >= http.StatusInternalServerError {
			if msg := c.GetString("error"); msg != "" {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
					logger.String("method", c.Request.Method),
					logger.String("path", path),
					logger.Int("status", status),
					logger.String("error", msg),
				)
			}
		}
	}
}
