package api

import (
	"music_library/internal/domain"     // Importing domain models
	"music_library/internal/dto"        // Response shapes
	"music_library/internal/repository" // Data access
	"music_library/internal/utils"      // Cache
	"net/http"                          // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

type categoryParam struct {
	Category string `uri:"category" binding:"required,oneof=artist album track"`
}

// Request struct for adding a favorite
type AddFavoriteRequest struct {
	Category string `json:"category" binding:"required,oneof=artist album track"`
	ItemID   string `json:"item_id" binding:"required,uuid"`
}

// ListFavoritesHandler lists the caller's favorites of one category
func ListFavoritesHandler(favorites *repository.FavoriteRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := caller(c)
		if !ok {
			return
		}
		var p categoryParam
		if err := c.ShouldBindUri(&p); err != nil {
			fail(c, bindingError(err))
			return
		}
		var q pageQuery
		if !bindQuery(c, &q) {
			return
		}
		ctx := c.Request.Context()
		parts := append([]string{identity.ID, p.Category}, q.cacheParts()...)
		rows, err := cachedList(ctx, cache, resourceFavorites, parts, func() ([]dto.Favorite, error) {
			list, err := favorites.List(ctx, identity.ID, domain.Category(p.Category), q.page())
			if err != nil {
				return nil, err
			}
			return dto.Map(list, dto.NewFavorite), nil
		})
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "Favorites retrieved successfully.")
	}
}

// AddFavoriteHandler favorites an existing artist, album or track
func AddFavoriteHandler(favorites *repository.FavoriteRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := caller(c)
		if !ok {
			return
		}
		var req AddFavoriteRequest
		if !bindJSON(c, &req) {
			return
		}
		fav, err := favorites.Add(c.Request.Context(), identity.ID, domain.Category(req.Category), req.ItemID)
		if err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceFavorites)
		respond(c, http.StatusCreated, gin.H{"favorite_id": fav.ID}, "Favorite added successfully.")
	}
}

// RemoveFavoriteHandler removes one of the caller's favorites
func RemoveFavoriteHandler(favorites *repository.FavoriteRepository, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := caller(c)
		if !ok {
			return
		}
		id, ok := bindID(c)
		if !ok {
			return
		}
		if err := favorites.Remove(c.Request.Context(), identity.ID, id); err != nil {
			fail(c, err)
			return
		}
		invalidate(c.Request.Context(), cache, resourceFavorites)
		respond(c, http.StatusOK, nil, "Favorite removed successfully.")
	}
}
