// requestid.go attaches a request ID to every request so log lines from
// one request can be correlated across handlers and services.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDContextKey contextKey = "request_id"

// RequestID returns middleware that reads an incoming X-Request-Id header
// or generates a fresh UUID, stores it in the context, and echoes it back
// on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(string(requestIDContextKey), id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// GetRequestID retrieves the request ID stored by the RequestID middleware.
func GetRequestID(c *gin.Context) string {
	val, exists := c.Get(string(requestIDContextKey))
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
