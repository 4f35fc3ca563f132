package api

import (
	"music_library/internal/apperr"     // Typed failures
	"music_library/internal/dto"        // Response shapes
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // JWT utility functions
	"net/http"                          // HTTP status codes
	"strings"                           // String manipulation
	"time"                              // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Request struct for signup
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`    // Email must be valid
	Password string `json:"password" binding:"required,min=6"` // At least 6 characters
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be valid
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// normalizeEmail makes emails case-insensitive for uniqueness and lookup
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword hashes a plaintext password with bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignupHandler registers a user. The first account becomes admin.
func SignupHandler(users *repository.UserRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		hash, err := hashPassword(req.Password) // Hash the password
		if err != nil {
			fail(c, err)
			return
		}
		user, err := users.Register(c.Request.Context(), normalizeEmail(req.Email), hash)
		if err != nil {
			// Duplicate email surfaces as Conflict
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceUsers)
		respond(c, http.StatusCreated, dto.NewUser(*user), "User created successfully.")
	}
}

// LoginHandler authenticates a user and issues a JWT token
func LoginHandler(users *repository.UserRepository, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user, err := users.GetByEmail(c.Request.Context(), normalizeEmail(req.Email))
		if err != nil {
			fail(c, err)
			return
		}
		// Compare the provided password with the stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			fail(c, apperr.BadRequest("Invalid password."))
			return
		}
		token, err := utils.GenerateJWT(user, secret, ttl) // Generate JWT token
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.Token{Token: token}, "Login successful.")
	}
}

// LogoutHandler acknowledges a logout. Tokens are stateless and simply expire.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := caller(c); !ok {
			return
		}
		respond(c, http.StatusOK, nil, "User logged out successfully.")
	}
}
