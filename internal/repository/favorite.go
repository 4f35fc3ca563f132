package repository

import (
	"context"                       // Request-scoped cancellation
	"fmt"                           // Error wrapping
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/domain" // Importing domain models
	"time"                          // Row timestamps

	"gorm.io/gorm" // GORM ORM library
)

// FavoriteItem is a favorite joined with the display name of its target.
// Name is nil when the target no longer exists.
type FavoriteItem struct {
	ID        string
	Category  domain.Category
	ItemID    string
	Name      *string
	CreatedAt time.Time
}

// FavoriteRepository reads and writes a user's favorites
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns the user's favorites of one category, newest first
func (r *FavoriteRepository) List(ctx context.Context, userID string, category domain.Category, page Page) ([]FavoriteItem, error) {
	if !category.Valid() {
		return nil, apperr.BadRequest("Bad Request, Reason: category.")
	}
	table := category.Table() // Closed set, safe to interpolate
	var items []FavoriteItem
	err := r.db.WithContext(ctx).
		Table("favorites").
		Select("favorites.id, favorites.category, favorites.item_id, favorites.created_at, "+table+".name AS name").
		Joins("LEFT JOIN "+table+" ON "+table+".id = favorites.item_id").
		Where("favorites.user_id = ? AND favorites.category = ?", userID, category).
		Order("favorites.created_at desc").
		Order("favorites.id").
		Scopes(paginate(page)).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return items, nil
}

// Add favorites an item for the user. The row is only written when the
// target exists; the (user, category, item) unique index rejects duplicates.
func (r *FavoriteRepository) Add(ctx context.Context, userID string, category domain.Category, itemID string) (*domain.Favorite, error) {
	if !category.Valid() {
		return nil, apperr.BadRequest("Bad Request, Reason: category.")
	}
	table := category.Table()
	ts := now()
	fav := &domain.Favorite{ID: domain.NewID(), UserID: userID, Category: category, ItemID: itemID, CreatedAt: ts, UpdatedAt: ts}
	res := r.db.WithContext(ctx).Exec(
		"INSERT INTO favorites (id, user_id, category, item_id, created_at, updated_at) "+
			"SELECT ?, ?, ?, "+table+".id, ?, ? FROM "+table+" WHERE "+table+".id = ?",
		fav.ID, fav.UserID, fav.Category, ts, ts, itemID,
	)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return nil, apperr.Conflict("Item already in favorites.")
		}
		return nil, fmt.Errorf("adding favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Item not found.")
	}
	return fav, nil
}

// Remove deletes one of the user's favorites. Favorites of other users are
// reported as NotFound.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, favoriteID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", favoriteID, userID).Delete(&domain.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("removing favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Favorite not found.")
	}
	return nil
}
