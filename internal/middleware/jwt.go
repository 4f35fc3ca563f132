package middleware

import (
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/utils"  // JWT utility functions
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// identityKey is the gin context key holding the verified caller
const identityKey = "identity"

// JWTAuthMiddleware validates bearer tokens and stores the caller's identity
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			_ = c.Error(apperr.Unauthenticated("Unauthorized Access."))
			c.Abort()
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")) // Extract the token string
		identity, err := utils.ParseJWT(tokenStr, secret)                        // Verify signature and expiry
		if err != nil {
			_ = c.Error(apperr.Unauthenticated("Invalid or expired token."))
			c.Abort()
			return
		}
		c.Set(identityKey, identity) // Store identity in context
		c.Next()                     // Proceed to the next handler
	}
}

// CurrentIdentity returns the caller stored by JWTAuthMiddleware
func CurrentIdentity(c *gin.Context) (*utils.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*utils.Identity)
	return identity, ok && identity != nil
}
