package middleware

import (
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the client's X-Request-ID or generates one, and stores it
// in the request context for log correlation.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = logger.GenerateRequestID()
		}

		c.Request = c.Request.WithContext(logger.SetRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
