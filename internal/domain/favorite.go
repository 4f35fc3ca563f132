package domain

import "time"

// Category is the kind of catalog entry a favorite points at
type Category string

const (
	CategoryArtist Category = "artist"
	CategoryAlbum  Category = "album"
	CategoryTrack  Category = "track"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryArtist, CategoryAlbum, CategoryTrack:
		return true
	}
	return false
}

// Table returns the table holding entries of this category
func (c Category) Table() string {
	switch c {
	case CategoryArtist:
		return "artists"
	case CategoryAlbum:
		return "albums"
	case CategoryTrack:
		return "tracks"
	}
	return ""
}

// Favorite Model. ItemID is not a foreign key: a favorite may outlive its target.
type Favorite struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex:idx_favorites_user_item"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category  Category  `gorm:"size:16;not null;uniqueIndex:idx_favorites_user_item"`
	ItemID    string    `gorm:"type:char(36);not null;uniqueIndex:idx_favorites_user_item"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
