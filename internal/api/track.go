package api

import (
	"music_library/internal/domain"     // Importing domain models
	"music_library/internal/dto"        // Response shapes
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // Cache
	"net/http"                          // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

type listTracksQuery struct {
	pageQuery
	ArtistID string `form:"artist_id" binding:"omitempty,uuid"`
	AlbumID  string `form:"album_id" binding:"omitempty,uuid"`
	Hidden   string `form:"hidden" binding:"omitempty,oneof=true false"`
}

// Request struct for creating a track
type AddTrackRequest struct {
	ArtistID string `json:"artist_id" binding:"required,uuid"`
	AlbumID  string `json:"album_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	Duration int    `json:"duration" binding:"required,min=1"` // Seconds
	Hidden   bool   `json:"hidden"`
}

// Request struct for a partial track update
type UpdateTrackRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Duration *int    `json:"duration" binding:"omitempty,min=1"`
	Hidden   *bool   `json:"hidden"`
}

// ListTracksHandler lists tracks
func ListTracksHandler(tracks *repository.TrackRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listTracksQuery
		if !bindQuery(c, &q) {
			return
		}
		ctx := c.Request.Context()
		parts := append(q.cacheParts(), "a"+q.ArtistID, "b"+q.AlbumID, "h"+q.Hidden)
		rows, err := cachedList(ctx, cache, resourceTracks, parts, func() ([]dto.Track, error) {
			filter := repository.TrackFilter{ArtistID: q.ArtistID, AlbumID: q.AlbumID, Hidden: parseHidden(q.Hidden)}
			list, err := tracks.List(ctx, filter, q.page())
			if err != nil {
				return nil, err
			}
			return dto.Map(list, dto.NewTrack), nil
		})
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "Tracks retrieved successfully.")
	}
}

// GetTrackHandler returns one track
func GetTrackHandler(tracks *repository.TrackRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		track, err := tracks.GetByID(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.NewTrack(*track), "Track retrieved successfully.")
	}
}

// AddTrackHandler creates a track on an existing artist and album
func AddTrackHandler(tracks *repository.TrackRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddTrackRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		track := domain.Track{
			ArtistID: req.ArtistID,
			AlbumID:  req.AlbumID,
			Name:     req.Name,
			Duration: req.Duration,
			Hidden:   req.Hidden,
		}
		if err := tracks.Create(ctx, &track); err != nil {
			fail(c, err)
			return
		}
		invalidate(ctx, cache, resourceTracks)
		created, err := tracks.GetByID(ctx, track.ID) // Reload with artist and album names
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusCreated, dto.NewTrack(*created), "Track created successfully.")
	}
}

// UpdateTrackHandler applies a partial update and returns the result
func UpdateTrackHandler(tracks *repository.TrackRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		var req UpdateTrackRequest
		if !bindJSON(c, &req) {
			return
		}
		ctx := c.Request.Context()
		if err := tracks.Update(ctx, id, repository.TrackPatch{Name: req.Name, Duration: req.Duration, Hidden: req.Hidden}); err != nil {
			fail(c, err)
			return
		}
		invalidate(ctx, cache, resourceTracks, resourceFavorites)
		track, err := tracks.GetByID(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, dto.NewTrack(*track), "Track updated successfully.")
	}
}

// DeleteTrackHandler removes a track and names it in the message
func DeleteTrackHandler(tracks *repository.TrackRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		name, err := tracks.Delete(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceTracks, resourceFavorites)
		respond(c, http.StatusOK, nil, "Track:"+name+" deleted successfully.")
	}
}
