package repository

import (
	"context"                       // Request-scoped cancellation
	"fmt"                           // Error wrapping
	"music_library/internal/apperr" // Typed failures
	"music_library/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// TrackFilter holds the equality filters of a track listing
type TrackFilter struct {
	ArtistID string
	AlbumID  string
	Hidden   *bool
}

// TrackPatch holds the fields of a partial track update
type TrackPatch struct {
	Name     *string
	Duration *int
	Hidden   *bool
}

// TrackRepository reads and writes tracks
type TrackRepository struct {
	db *gorm.DB
}

// NewTrackRepository creates a TrackRepository
func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// List returns tracks with artist and album joined in, newest first
func (r *TrackRepository) List(ctx context.Context, filter TrackFilter, page Page) ([]domain.Track, error) {
	query := r.db.WithContext(ctx).Joins("Artist").Joins("Album")
	if filter.ArtistID != "" {
		query = query.Where("tracks.artist_id = ?", filter.ArtistID)
	}
	if filter.AlbumID != "" {
		query = query.Where("tracks.album_id = ?", filter.AlbumID)
	}
	if filter.Hidden != nil {
		query = query.Where("tracks.hidden = ?", *filter.Hidden)
	}
	var tracks []domain.Track
	if err := query.Order("tracks.created_at desc").Order("tracks.id").Scopes(paginate(page)).Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}
	return tracks, nil
}

// GetByID returns the track with its artist and album
func (r *TrackRepository) GetByID(ctx context.Context, id string) (*domain.Track, error) {
	var track domain.Track
	if err := r.db.WithContext(ctx).Joins("Artist").Joins("Album").Where("tracks.id = ?", id).First(&track).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("Track not found.")
		}
		return nil, fmt.Errorf("loading track: %w", err)
	}
	return &track, nil
}

// Create inserts the track only if both its artist and album exist, in one
// statement. When nothing is written the missing reference is looked up to
// pick the message; the write itself never depends on that lookup.
func (r *TrackRepository) Create(ctx context.Context, track *domain.Track) error {
	ts := now()
	track.ID = domain.NewID()
	track.CreatedAt, track.UpdatedAt = ts, ts
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO tracks (id, name, duration, hidden, artist_id, album_id, created_at, updated_at)
		SELECT ?, ?, ?, ?, artists.id, albums.id, ?, ?
		FROM artists, albums WHERE artists.id = ? AND albums.id = ?`,
		track.ID, track.Name, track.Duration, track.Hidden, ts, ts, track.ArtistID, track.AlbumID,
	)
	if res.Error != nil {
		return fmt.Errorf("creating track: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	found, err := exists(ctx, r.db, "artists", track.ArtistID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("Artist not found.")
	}
	return apperr.NotFound("Album not found.")
}

// Update applies a partial update
func (r *TrackRepository) Update(ctx context.Context, id string, p TrackPatch) error {
	updates := newPatch()
	if p.Name != nil {
		updates.set("name", *p.Name)
	}
	if p.Duration != nil {
		updates.set("duration", *p.Duration)
	}
	if p.Hidden != nil {
		updates.set("hidden", *p.Hidden)
	}
	res := r.db.WithContext(ctx).Model(&domain.Track{}).Where("id = ?", id).Updates(map[string]any(updates))
	if res.Error != nil {
		return fmt.Errorf("updating track: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Track not found.")
	}
	return nil
}

// Delete removes a track and returns its name
func (r *TrackRepository) Delete(ctx context.Context, id string) (string, error) {
	track, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Track{})
	if res.Error != nil {
		return "", fmt.Errorf("deleting track: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", apperr.NotFound("Track not found.")
	}
	return track.Name, nil
}
