package utils

import (
	"errors"                        // Sentinel errors
	"music_library/internal/domain" // Role type
	"time"                          // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for any token that fails verification
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTokenTTL is the lifetime of an issued token
const DefaultTokenTTL = 24 * time.Hour

// JWT Claims
type Claims struct {
	ID                   string      `json:"id"`    // User ID
	Email                string      `json:"email"` // User email
	Role                 domain.Role `json:"role"`  // User role at issuance
	jwt.RegisteredClaims                            // Standard JWT claims
}

// Identity is the verified caller extracted from a token
type Identity struct {
	ID    string
	Email string
	Role  domain.Role
}

// GenerateJWT creates a signed token for the given user
func GenerateJWT(user *domain.User, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	// Set token claims
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expires after ttl
			IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT verifies the signature and expiry of a token and returns its identity
func ParseJWT(tokenStr, secret string) (*Identity, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: claims.ID, Email: claims.Email, Role: claims.Role}, nil
}
