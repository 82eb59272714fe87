package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"replydesk/internal/infrastructure/auth"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/constants"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserSID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		c.Set(constants.ContextKeyClientID, claims.ClientSID)

		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireClientAccess scopes a route to its owning client: admins pass for
// any client, client users only when the path parameter names their own
// client. Must run after RequireAuth.
func (m *AuthMiddleware) RequireClientAccess(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
		if role.IsAdmin() {
			c.Next()
			return
		}

		ownSID := c.GetString(constants.ContextKeyClientID)
		if ownSID == "" || c.Param(paramName) != ownSID {
			m.logger.Warnw("cross-client access refused",
				"own_client", ownSID,
				"requested", c.Param(paramName))
			utils.ErrorResponse(c, http.StatusForbidden, "access to this client is not allowed")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RoleFromContext returns the authenticated role set by RequireAuth.
func RoleFromContext(c *gin.Context) authorization.UserRole {
	return authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
}
