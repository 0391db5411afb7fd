package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/auth"
	"github.com/gourmet-express/api/store"
)

const userIDKey = "userID"

// AuthRequired validates the bearer token and checks that its subject still
// exists before letting the request through.
func AuthRequired(tokens *auth.TokenService, users store.IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			return
		}
		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if _, err := users.FindByID(claims.Subject); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// GetUserID extracts the authenticated caller's id from the context.
func GetUserID(c *gin.Context) string {
	val, _ := c.Get(userIDKey)
	id, _ := val.(string)
	return id
}
