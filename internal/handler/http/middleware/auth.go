package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// Context keys under which the resolved principal is stored.
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
)

// AuthMiddleware requires a valid bearer token and stores the resolved user
// id and role in the gin context. Handlers downstream trust that identity.
func AuthMiddleware(tokens usecasecontract.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := resolveToken(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid access token"})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserRoleKey, role)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid token is present but lets
// anonymous requests through. Public read endpoints use it.
func OptionalAuth(tokens usecasecontract.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, ok := resolveToken(c, tokens); ok {
			c.Set(ContextUserIDKey, userID)
			c.Set(ContextUserRoleKey, role)
		}
		c.Next()
	}
}

func resolveToken(c *gin.Context, tokens usecasecontract.ITokenService) (string, string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", "", false
	}
	userID, role, err := tokens.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil || userID == "" {
		return "", "", false
	}
	return userID, role, true
}
