package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stickynotes/sticky-notes-api/internal/token"
)

const errUnauthorized = "Unauthorized"

// Auth validates a Bearer access token and sets "userID" (plus the
// denormalized "email"/"username" claims) in the gin context.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": errUnauthorized})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AuthOptional resolves the caller's identity when a valid Bearer token is
// present and continues anonymously otherwise. Handlers behind it treat an
// empty "userID" as an anonymous caller.
func AuthOptional(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, tokens); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, tokens *token.Service) (*token.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims, err := tokens.VerifyAccess(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *token.Claims) {
	c.Set("userID", claims.Subject)
	c.Set("email", claims.Email)
	c.Set("username", claims.Username)
}
