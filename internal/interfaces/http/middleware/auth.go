package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tessera-live/tessera/internal/infrastructure/auth"
	"github.com/tessera-live/tessera/internal/shared/logger"
	"github.com/tessera-live/tessera/internal/shared/utils"
)

// ContextKeyPrincipal is the gin context key the authenticated principal is
// stored under.
const ContextKeyPrincipal = "principal"

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

		c.Set(ContextKeyPrincipal, claims.Principal)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal or empty when the
// request did not pass RequireAuth.
func PrincipalFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyPrincipal); ok {
		if principal, ok := v.(string); ok {
			return principal
		}
	}
	return ""
}
