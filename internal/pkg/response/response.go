package response

import "github.com/gin-gonic/gin"

// Success writes {ok:true, data:...}.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"ok":   true,
		"data": data,
	})
}

// Error writes the one failure envelope every endpoint shares:
// {ok:false, error:..., status:...}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"ok":     false,
		"error":  message,
		"status": statusCode,
	})
}

// ErrorWithDetails adds a details payload, used for field validation maps.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"ok":      false,
		"error":   message,
		"status":  statusCode,
		"details": details,
	})
}
