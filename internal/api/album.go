package api

import (
	"music_library/internal/domain"     // Importing domain models
	"music_library/internal/dto"        // Response shapes
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // Cache
	"net/http"                          // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

type listAlbumsQuery struct {
	pageQuery
	ArtistID string `form:"artist_id" binding:"omitempty,uuid"`
	Hidden   string `form:"hidden" binding:"omitempty,oneof=true false"`
}

// Request struct for creating an album
type AddAlbumRequest struct {
	ArtistID string `json:"artist_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	Year     *int   `json:"year" binding:"required,min=1900,notfuture"` // Release year, not in the future
	Hidden   bool   `json:"hidden"`
}

// Request struct for a partial album update
type UpdateAlbumRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1"`
	Year   *int    `json:"year" binding:"omitempty,min=1900,notfuture"`
	Hidden *bool   `json:"hidden"`
}

// ListAlbumsHandler lists albums, optionally of one artist
func ListAlbumsHandler(albums *repository.AlbumRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listAlbumsQuery
		if !bindQuery(c, &q) {
			return
		}
		ctx := c.Request.Context()
		rows, err := cachedList(ctx, cache, resourceAlbums, append(q.cacheParts(), "a"+q.ArtistID, "h"+q.Hidden), func() ([]dto.Album, error) {
			filter := repository.AlbumFilter{ArtistID: q.ArtistID, Hidden: parseHidden(q.Hidden)}
			list, err := albums.List(ctx, filter, q.page())
			if err != nil {
				return nil, err
			}
			return dto.Map(list, dto.NewAlbum), nil
		})
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "Albums retrieved successfully.")
	}
}

// GetAlbumHandler returns one album
func GetAlbumHandler(albums *repository.AlbumRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		album, err := albums.GetByID(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.NewAlbum(*album), "Album retrieved successfully.")
	}
}

// AddAlbumHandler creates an album for an existing artist
func AddAlbumHandler(albums *repository.AlbumRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddAlbumRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		album := domain.Album{ArtistID: req.ArtistID, Name: req.Name, Year: *req.Year, Hidden: req.Hidden}
		if err := albums.Create(ctx, &album); err != nil {
			fail(c, err)
			return
		}
		invalidate(ctx, cache, resourceAlbums)
		created, err := albums.GetByID(ctx, album.ID) // Reload with the artist name
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusCreated, dto.NewAlbum(*created), "Album created successfully.")
	}
}

// UpdateAlbumHandler applies a partial update and returns the result
func UpdateAlbumHandler(albums *repository.AlbumRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var req UpdateAlbumRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		if err := albums.Update(ctx, id, repository.AlbumPatch{Name: req.Name, Year: req.Year, Hidden: req.Hidden}); err != nil {
			fail(c, err)
			return
		}
		invalidate(ctx, cache, resourceAlbums, resourceTracks, resourceFavorites)
		album, err := albums.GetByID(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.NewAlbum(*album), "Album updated successfully.")
	}
}

// DeleteAlbumHandler removes an album together with its tracks
func DeleteAlbumHandler(albums *repository.AlbumRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := albums.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceAlbums, resourceTracks, resourceFavorites)
		respond(c, http.StatusOK, nil, "Album deleted successfully.")
	}
}
