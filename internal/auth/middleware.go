package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context. The raw token is
// also kept on the context: it is forwarded verbatim as the bearer
// credential for shift registry calls.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// Set user context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("agency_id", claims.AgencyID)
		c.Set("agency_scope", claims.AgencyScope)
		c.Set("access_token", tokenString)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// ClaimsFromContext returns the validated claims set by RequireAuth, if any
func ClaimsFromContext(c *gin.Context) *AuthClaims {
	value, exists := c.Get("auth_claims")
	if !exists {
		return nil
	}
	claims, ok := value.(*AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
