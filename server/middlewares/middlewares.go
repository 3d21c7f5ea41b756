// Package middlewares holds the auth boundary: bearer-token lookup and
// the permission gate used on role mutation.
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/somosmas/ong-api/model"
)

// UserIDKey is the context key the token middleware stashes the
// authenticated user's id under.
const UserIDKey = "auth_user_id"

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, prefix) {
		return strings.TrimPrefix(header, prefix)
	}
	return c.Query("token")
}

// RequireToken rejects requests without a valid bearer token and stores
// the token owner's id in the context for handlers downstream. Tokens
// are the opaque values issued at login, looked up in access_tokens.
func RequireToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthenticated"})
			c.Abort()
			return
		}

		var access model.AccessToken
		if err := db.Where("token = ?", token).First(&access).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthenticated"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, access.UserID)
		c.Next()
	}
}

// RequirePermission gates a route behind a named grant on the caller's
// roles. Must run after RequireToken.
func RequirePermission(db *gorm.DB, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(UserIDKey)

		var count int64
		err := db.Table("permissions").
			Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
			Joins("JOIN user_roles ON user_roles.role_id = role_permissions.role_id").
			Where("user_roles.user_id = ? AND permissions.name = ?", userID, permission).
			Count(&count).Error
		if err != nil || count == 0 {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
