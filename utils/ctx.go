package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// OwnerKey is set by middlewares.CustomerContext: the authenticated username
// when logged in, otherwise the anonymous cookie token.
func OwnerKey(c *gin.Context) string {
	if v, ok := c.Get("ownerKey"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
