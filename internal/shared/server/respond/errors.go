package respond

import (
	"github.com/gin-gonic/gin"

	"cashorclout-backend/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every failed operation. Internal
// detail stays in the logs; only the generic message crosses the boundary.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure with full detail and sends the generic message.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if details != nil {
		fields["details"] = details
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
