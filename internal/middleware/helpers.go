// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetUserID gets the authenticated principal's id from context.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

// GetRole gets the authenticated principal's role from context.
func GetRole(c *gin.Context) string {
	v, exists := c.Get("role")
	if !exists {
		return ""
	}

	role, ok := v.(string)
	if !ok {
		return ""
	}

	return role
}

// IsAuthenticated checks if the request carries a validated token.
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("user_id")
	return exists
}
