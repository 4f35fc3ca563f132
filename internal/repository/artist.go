package repository

import (
	"context"                       // Request-scoped cancellation
	"fmt"                           // Error wrapping
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ArtistFilter holds the equality filters of an artist listing
type ArtistFilter struct {
	Grammy *int
	Hidden *bool
}

// ArtistPatch holds the fields of a partial artist update; nil fields are kept
type ArtistPatch struct {
	Name   *string
	Grammy *int
	Hidden *bool
}

// ArtistRepository reads and writes artists
type ArtistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates an ArtistRepository
func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// List returns artists matching the filter, newest first
func (r *ArtistRepository) List(ctx context.Context, filter ArtistFilter, page Page) ([]domain.Artist, error) {
	query := r.db.WithContext(ctx).Model(&domain.Artist{})
	if filter.Grammy != nil {
		query = query.Where("grammy = ?", *filter.Grammy) // Filter by grammy count
	}
	if filter.Hidden != nil {
		query = query.Where("hidden = ?", *filter.Hidden) // Filter by visibility
	}
	var artists []domain.Artist
	if err := query.Order("created_at desc").Order("id").Scopes(paginate(page)).Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("listing artists: %w", err)
	}
	return artists, nil
}

// GetByID returns the artist with the given id
func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var artist domain.Artist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Artist not found.")
		}
		return nil, fmt.Errorf("loading artist: %w", err)
	}
	return &artist, nil
}

// Create inserts a new artist and fills in its id and timestamps
func (r *ArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	if err := r.db.WithContext(ctx).Create(artist).Error; err != nil {
		return fmt.Errorf("creating artist: %w", err)
	}
	return nil
}

// Update applies a partial update
func (r *ArtistRepository) Update(ctx context.Context, id string, p ArtistPatch) error {
	updates := newPatch()
	if p.Name != nil {
		updates.set("name", *p.Name)
	}
	if p.Grammy != nil {
		updates.set("grammy", *p.Grammy)
	}
	if p.Hidden != nil {
		updates.set("hidden", *p.Hidden)
	}
	res := r.db.WithContext(ctx).Model(&domain.Artist{}).Where("id = ?", id).Updates(map[string]any(updates))
	if res.Error != nil {
		return fmt.Errorf("updating artist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Artist not found.")
	}
	return nil
}

// Delete removes an artist. Its albums and tracks go with it through the
// ON DELETE CASCADE foreign keys.
func (r *ArtistRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Artist{})
	if res.Error != nil {
		return fmt.Errorf("deleting artist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Artist not found.")
	}
	return nil
}

// Exists reports whether an artist with the id exists
func (r *ArtistRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "artists", id)
}

// exists reports whether table has a row with the given id
func exists(ctx context.Context, db *gorm.DB, table, id string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking %s: %w", table, err)
	}
	return count > 0, nil
}
