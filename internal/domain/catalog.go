package domain

import "time"

// Artist Model
type Artist struct {
	ID        string    `gorm:"type:char(36);primaryKey"` // UUID primary key
	Name      string    `gorm:"size:255;not null"`        // Display name
	Grammy    int       `gorm:"not null;default:0"`       // Number of Grammy awards
	Hidden    bool      `gorm:"not null;default:false"`   // Hidden from public listings
	CreatedAt time.Time `gorm:"index"`                    // Creation timestamp
	UpdatedAt time.Time
}

// Album Model. Removing the artist removes its albums.
type Album struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Year      int       `gorm:"not null"`
	Hidden    bool      `gorm:"not null;default:false"`
	ArtistID  string    `gorm:"type:char(36);not null;index"`
	Artist    Artist    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// Track Model. Removing either the artist or the album removes the track.
type Track struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Duration  int       `gorm:"not null"` // Length in seconds
	Hidden    bool      `gorm:"not null;default:false"`
	ArtistID  string    `gorm:"type:char(36);not null;index"`
	Artist    Artist    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AlbumID   string    `gorm:"type:char(36);not null;index"`
	Album     Album     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
