package middleware

import (
	"strings"

	"pullup-club/pkg/errutil"
	"pullup-club/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"

	RoleMember = "member"
	RoleAdmin  = "admin"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errutil.Respond(c, errutil.Unauthorized("Authorization header required"))
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			errutil.Respond(c, errutil.Unauthorized("Authorization header must be a Bearer token"))
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(token))
		if err != nil || claims.UserID == "" {
			errutil.Respond(c, errutil.Unauthorized("Invalid token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			errutil.Respond(c, errutil.Forbidden("Insufficient permissions"))
			return
		}
		c.Next()
	}
}
