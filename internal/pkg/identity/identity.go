// Package identity reads the caller identity that the platform gateway
// injects as trusted headers. The backend never validates credentials
// itself, it only trusts the gateway.
package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	ctxUserID   = "identity.userID"
	ctxUserRole = "identity.userRole"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Extract copies the gateway identity headers into the request context.
// Requests without the headers pass through anonymously.
func Extract() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(headerUserID); id != "" {
			c.Set(ctxUserID, id)
			c.Set(ctxUserRole, c.GetHeader(headerUserRole))
		}
		c.Next()
	}
}

// RequireUser aborts with 401 when no gateway identity is present.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ctxUserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the caller's user id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// Role returns the caller's role, or "" for anonymous requests.
func Role(c *gin.Context) string {
	return c.GetString(ctxUserRole)
}

func IsAdmin(c *gin.Context) bool {
	return Role(c) == RoleAdmin
}
