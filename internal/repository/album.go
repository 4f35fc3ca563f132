package repository

import (
	"context"                       // Request-scoped cancellation
	"fmt"                           // Error wrapping
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AlbumFilter holds the equality filters of an album listing
type AlbumFilter struct {
	ArtistID string
	Hidden   *bool
}

// AlbumPatch holds the fields of a partial album update
type AlbumPatch struct {
	Name   *string
	Year   *int
	Hidden *bool
}

// AlbumRepository reads and writes albums
type AlbumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates an AlbumRepository
func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// List returns albums with their artist joined in, newest first. Filtering by
// an artist that does not exist is reported as NotFound.
func (r *AlbumRepository) List(ctx context.Context, filter AlbumFilter, page Page) ([]domain.Album, error) {
	query := r.db.WithContext(ctx).Joins("Artist")
	if filter.ArtistID != "" {
		found, err := exists(ctx, r.db, "artists", filter.ArtistID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperr.NotFound("Artist not found.")
		}
		query = query.Where("albums.artist_id = ?", filter.ArtistID)
	}
	if filter.Hidden != nil {
		query = query.Where("albums.hidden = ?", *filter.Hidden)
	}
	var albums []domain.Album
	if err := query.Order("albums.created_at desc").Order("albums.id").Scopes(paginate(page)).Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("listing albums: %w", err)
	}
	return albums, nil
}

// GetByID returns the album with its artist
func (r *AlbumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	var album domain.Album
	if err := r.db.WithContext(ctx).Joins("Artist").Where("albums.id = ?", id).First(&album).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Album not found.")
		}
		return nil, fmt.Errorf("loading album: %w", err)
	}
	return &album, nil
}

// Create inserts the album only if its artist exists, in one statement
func (r *AlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	ts := now()
	album.ID = domain.NewID()
	album.CreatedAt, album.UpdatedAt = ts, ts
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO albums (id, name, year, hidden, artist_id, created_at, updated_at)
		SELECT ?, ?, ?, ?, artists.id, ?, ? FROM artists WHERE artists.id = ?`,
		album.ID, album.Name, album.Year, album.Hidden, ts, ts, album.ArtistID,
	)
	if res.Error != nil {
		return fmt.Errorf("creating album: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Artist not found.")
	}
	return nil
}

// Update applies a partial update
func (r *AlbumRepository) Update(ctx context.Context, id string, p AlbumPatch) error {
	updates := newPatch()
	if p.Name != nil {
		updates.set("name", *p.Name)
	}
	if p.Year != nil {
		updates.set("year", *p.Year)
	}
	if p.Hidden != nil {
		updates.set("hidden", *p.Hidden)
	}
	res := r.db.WithContext(ctx).Model(&domain.Album{}).Where("id = ?", id).Updates(map[string]any(updates))
	if res.Error != nil {
		return fmt.Errorf("updating album: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Album not found.")
	}
	return nil
}

// Delete removes an album and, through the foreign key, its tracks
func (r *AlbumRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Album{})
	if res.Error != nil {
		return fmt.Errorf("deleting album: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Album not found.")
	}
	return nil
}
