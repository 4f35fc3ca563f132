package dto

import (
	"encoding/json"
	"testing"
	"time"

	"music_library/internal/domain"
	"music_library/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlbum_DenormalizesArtist(t *testing.T) {
	album := domain.Album{
		ID:       "album-1",
		Name:     "Kind of Blue",
		Year:     1959,
		ArtistID: "artist-1",
		Artist:   domain.Artist{ID: "artist-1", Name: "Miles Davis"},
	}

	b, err := json.Marshal(NewAlbum(album))
	require.NoError(t, err)
	assert.JSONEq(t, `{"album_id":"album-1","artist_name":"Miles Davis","name":"Kind of Blue","year":1959,"hidden":false}`, string(b))
}

func TestNewTrack_DenormalizesArtistAndAlbum(t *testing.T) {
	track := domain.Track{
		ID:       "track-1",
		Name:     "So What",
		Duration: 562,
		Artist:   domain.Artist{Name: "Miles Davis"},
		Album:    domain.Album{Name: "Kind of Blue"},
	}

	got := NewTrack(track)
	assert.Equal(t, Track{TrackID: "track-1", ArtistName: "Miles Davis", AlbumName: "Kind of Blue", Name: "So What", Duration: 562}, got)
}

func TestNewFavorite_UnknownWhenOrphaned(t *testing.T) {
	name := "Blue Train"
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "Blue Train", NewFavorite(repository.FavoriteItem{ID: "f1", Name: &name}).Name)

	orphan := NewFavorite(repository.FavoriteItem{ID: "f2", Category: domain.CategoryAlbum, ItemID: "gone", CreatedAt: created})
	assert.Equal(t, UnknownName, orphan.Name)
	assert.Equal(t, "gone", orphan.ItemID)
	assert.Equal(t, created, orphan.CreatedAt)
}

func TestNewUser_HidesPassword(t *testing.T) {
	b, err := json.Marshal(NewUser(domain.User{ID: "u1", Email: "a@x.com", Password: "secret-hash", Role: domain.RoleViewer}))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.Contains(t, string(b), `"user_id":"u1"`)
}

func TestMap_EmptyIsNotNil(t *testing.T) {
	out := Map([]domain.Artist(nil), NewArtist)
	require.NotNil(t, out)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
