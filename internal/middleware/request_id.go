package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legal-office-management/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates X-Request-ID (or a new uuid) into the request context and the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
