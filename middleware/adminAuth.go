package middleware

import (
	"net/http"
	"strings"

	"tropicab/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware protects the catalog admin endpoints. Tokens are
// issued by the admin login handler and must carry the admin claim.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if !utils.IsAdminToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
