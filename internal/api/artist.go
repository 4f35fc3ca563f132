package api

import (
	"music_library/internal/domain"     // Importing domain models
	"music_library/internal/dto"        // Response shapes
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // Cache
	"net/http"                          // HTTP status codes
	"strconv"                           // Cache key parts

	"github.com/gin-gonic/gin" // Gin web framework
)

type listArtistsQuery struct {
	pageQuery
	Grammy *int   `form:"grammy" binding:"omitempty,min=0"`
	Hidden string `form:"hidden" binding:"omitempty,oneof=true false"`
}

// Request struct for creating an artist
type AddArtistRequest struct {
	Name   string `json:"name" binding:"required"`         // Name must be provided
	Grammy *int   `json:"grammy" binding:"required,min=0"` // Grammy count, zero allowed
	Hidden bool   `json:"hidden"`                          // Defaults to false
}

// Request struct for a partial artist update
type UpdateArtistRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1"`
	Grammy *int    `json:"grammy" binding:"omitempty,min=0"`
	Hidden *bool   `json:"hidden"`
}

// ListArtistsHandler lists artists
func ListArtistsHandler(artists *repository.ArtistRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listArtistsQuery
		if !bindQuery(c, &q) {
			return
		}
		grammy := ""
		if q.Grammy != nil {
			grammy = strconv.Itoa(*q.Grammy)
		}
		ctx := c.Request.Context()
		rows, err := cachedList(ctx, cache, resourceArtists, append(q.cacheParts(), "g"+grammy, "h"+q.Hidden), func() ([]dto.Artist, error) {
			filter := repository.ArtistFilter{Grammy: q.Grammy, Hidden: parseHidden(q.Hidden)}
			list, err := artists.List(ctx, filter, q.page())
			if err != nil {
				return nil, err
			}
			return dto.Map(list, dto.NewArtist), nil
		})
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "Artists retrieved successfully.")
	}
}

// GetArtistHandler returns one artist
func GetArtistHandler(artists *repository.ArtistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		artist, err := artists.GetByID(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.NewArtist(*artist), "Artist retrieved successfully.")
	}
}

// AddArtistHandler creates an artist
func AddArtistHandler(artists *repository.ArtistRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddArtistRequest
		if !bindJSON(c, &req) {
			return
		}
		artist := domain.Artist{Name: req.Name, Grammy: *req.Grammy, Hidden: req.Hidden}
		if err := artists.Create(c.Request.Context(), &artist); err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceArtists)
		respond(c, http.StatusCreated, dto.NewArtist(artist), "Artist created successfully.")
	}
}

// UpdateArtistHandler applies a partial update and returns the result
func UpdateArtistHandler(artists *repository.ArtistRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var req UpdateArtistRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		patch := repository.ArtistPatch{Name: req.Name, Grammy: req.Grammy, Hidden: req.Hidden}
		if err := artists.Update(ctx, id, patch); err != nil {
			fail(c, err)
			return
		}
		// Albums, tracks and favorites display the artist's name
		invalidate(ctx, cache, resourceArtists, resourceAlbums, resourceTracks, resourceFavorites)
		artist, err := artists.GetByID(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.NewArtist(*artist), "Artist updated successfully.")
	}
}

// DeleteArtistHandler removes an artist together with its albums and tracks
func DeleteArtistHandler(artists *repository.ArtistRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := artists.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceArtists, resourceAlbums, resourceTracks, resourceFavorites)
		respond(c, http.StatusOK, dto.ArtistDeleted{ArtistID: id}, "Artist deleted successfully.")
	}
}
