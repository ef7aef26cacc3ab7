package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the fixed JSON shape of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func JSON(c *gin.Context, status int, success bool, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: success,
		Message: message,
		Data:    data,
	})
}

func OK(c *gin.Context, message string, data interface{}) {
	JSON(c, 200, true, message, data)
}

func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, 201, true, message, data)
}

func Error(c *gin.Context, status int, message string) {
	JSON(c, status, false, message, nil)
}

// AbortError ends the middleware chain with an error envelope.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Message: message,
	})
}
