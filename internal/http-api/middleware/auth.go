package middleware

import (
	"net/http"
	"strings"

	"filmhub/internal/http-api/authz"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// RequireAuth validates the Bearer token and stores the resolved caller in
// the context. Requests without a valid token are rejected with 401.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractClaims(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a token is present but lets anonymous
// requests through. Public routes use it so that authorization still sees the
// real identity when one exists.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := extractClaims(c, authService); ok {
			setCaller(c, claims)
		}
		c.Next()
	}
}

func extractClaims(c *gin.Context, authService service.AuthService) (*service.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Format: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setCaller(c *gin.Context, claims *service.Claims) {
	c.Set(callerKey, authz.Caller{
		UserID:        claims.UserID,
		Authenticated: true,
		IsAdmin:       claims.Role == models.RoleAdmin,
	})
}

// CallerFromContext returns the resolved caller, or an anonymous one when the
// request carried no valid token.
func CallerFromContext(c *gin.Context) authz.Caller {
	if v, exists := c.Get(callerKey); exists {
		if caller, ok := v.(authz.Caller); ok {
			return caller
		}
	}
	return authz.Caller{}
}
