package utils

import "github.com/gin-gonic/gin"

// RespondData wraps a successful payload in the {"data": ...} envelope the
// client expects.
func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

// RespondError renders any error as {"error": ..., "status": ...}. An
// *APIError carries its own status code; anything else is treated as a
// store-level failure.
func RespondError(c *gin.Context, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		apiErr = PersistenceError(err)
	}
	c.JSON(apiErr.Status, gin.H{
		"error":  apiErr.Message,
		"status": apiErr.Status,
	})
}
