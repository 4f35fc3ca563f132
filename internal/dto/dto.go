// Package dto projects persistence rows into the response shapes of the API.
// Internal identifiers are renamed to domain names (artist_id, album_id, ...)
// and foreign keys are replaced with the display names of what they point at.
package dto

import (
	"music_library/internal/domain"
	"music_library/internal/repository"
	"time"
)

// UnknownName is shown for a favorite whose target no longer exists
const UnknownName = "Unknown"

// Artist response
type Artist struct {
	ArtistID string `json:"artist_id"`
	Name     string `json:"name"`
	Grammy   int    `json:"grammy"`
	Hidden   bool   `json:"hidden"`
}

// Album response
type Album struct {
	AlbumID    string `json:"album_id"`
	ArtistName string `json:"artist_name"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Hidden     bool   `json:"hidden"`
}

// Track response
type Track struct {
	TrackID    string `json:"track_id"`
	ArtistName string `json:"artist_name"`
	AlbumName  string `json:"album_name"`
	Name       string `json:"name"`
	Duration   int    `json:"duration"`
	Hidden     bool   `json:"hidden"`
}

// Favorite response
type Favorite struct {
	FavoriteID string          `json:"favorite_id"`
	Category   domain.Category `json:"category"`
	ItemID     string          `json:"item_id"`
	Name       string          `json:"name"`
	CreatedAt  time.Time       `json:"created_at"`
}

// User response. The password hash is never exposed.
type User struct {
	UserID    string      `json:"user_id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// Token is returned by login
type Token struct {
	Token string `json:"token"`
}

// ArtistDeleted is returned by artist deletion
type ArtistDeleted struct {
	ArtistID string `json:"artist_id"`
}

func NewArtist(a domain.Artist) Artist {
	return Artist{ArtistID: a.ID, Name: a.Name, Grammy: a.Grammy, Hidden: a.Hidden}
}

func NewAlbum(a domain.Album) Album {
	return Album{AlbumID: a.ID, ArtistName: a.Artist.Name, Name: a.Name, Year: a.Year, Hidden: a.Hidden}
}

func NewTrack(t domain.Track) Track {
	return Track{
		TrackID:    t.ID,
		ArtistName: t.Artist.Name,
		AlbumName:  t.Album.Name,
		Name:       t.Name,
		Duration:   t.Duration,
		Hidden:     t.Hidden,
	}
}

func NewFavorite(f repository.FavoriteItem) Favorite {
	name := UnknownName
	if f.Name != nil {
		name = *f.Name
	}
	return Favorite{FavoriteID: f.ID, Category: f.Category, ItemID: f.ItemID, Name: name, CreatedAt: f.CreatedAt}
}

func NewUser(u domain.User) User {
	return User{UserID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

// Map projects every row with fn. The result is never nil so empty pages
// encode as [] rather than null.
func Map[T, R any](rows []T, fn func(T) R) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}

// Envelope is the uniform body of every response
type Envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Error   any    `json:"error"`
}
