package middleware

import (
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/domain" // Role constants
	"music_library/internal/utils"  // Identity type
	"slices"                        // Allow-list lookup

	"github.com/gin-gonic/gin" // Gin web framework
)

// CheckRole compares the caller's role against an allow-list
func CheckRole(identity *utils.Identity, allowed ...domain.Role) error {
	if identity == nil {
		return apperr.Unauthenticated("User not authenticated.")
	}
	if !slices.Contains(allowed, identity.Role) {
		return apperr.Forbidden("Forbidden Access/Operation not allowed.")
	}
	return nil
}

// Authorize rejects callers whose role is not in the allow-list.
// It must run after JWTAuthMiddleware.
func Authorize(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		if err := CheckRole(identity, allowed...); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
