package api

import (
	"context"                           // Cache calls
	"music_library/internal/apperr"     // Typed failures
	"music_library/internal/dto"        // Response envelope
	"music_library/internal/middleware" // Caller identity
	"music_library/internal/utils"      // Identity and cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Cache resources, one generation counter each
const (
	resourceUsers     = "users"
	resourceArtists   = "artists"
	resourceAlbums    = "albums"
	resourceTracks    = "tracks"
	resourceFavorites = "favorites"
)

// respond writes a success envelope
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.Envelope{Status: status, Data: data, Message: message})
}

// fail hands err to the error boundary and stops the chain
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// caller returns the authenticated identity or fails the request
func caller(c *gin.Context) (*utils.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		fail(c, apperr.Unauthenticated("User not authenticated."))
		return nil, false
	}
	return identity, true
}

// cachedList serves a list page from the cache when possible. Cache failures
// are logged and the page is loaded from the database instead.
func cachedList[T any](ctx context.Context, cache *utils.ListCache, resource string, parts []string, load func() ([]T, error)) ([]T, error) {
	key, err := cache.Key(ctx, resource, parts...)
	if err != nil {
		logrus.WithError(err).WithField("resource", resource).Warn("Cache key lookup failed")
		return load()
	}
	var rows []T
	if hit, err := cache.Get(ctx, key, &rows); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
	} else if hit {
		return rows, nil // Cache hit
	}
	rows, err = load()
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, key, rows); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
	return rows, nil
}

// invalidate drops cached pages of the given resources
func invalidate(ctx context.Context, cache *utils.ListCache, resources ...string) {
	if err := cache.Invalidate(ctx, resources...); err != nil {
		logrus.WithError(err).WithField("resources", resources).Warn("Cache invalidation failed")
	}
}
