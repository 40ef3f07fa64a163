package response

import (
	"github.com/gin-gonic/gin"
)

// Every failure answers the same one-field shape; clients never see
// internal detail.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends the uniform error body.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// Message sends a confirmation-only body.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
