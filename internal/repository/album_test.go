package repository

import (
	"context"
	"testing"

	"music_library/internal/apperr"
	"music_library/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumRepository_CreateRequiresArtist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.albums.Create(ctx, &domain.Album{ArtistID: missingID, Name: "Ghost", Year: 2000})
	assertKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "Artist not found.", err.Error())

	var count int64
	require.NoError(t, f.db.Model(&domain.Album{}).Count(&count).Error)
	assert.Zero(t, count, "no partial write")
}

func TestAlbumRepository_GetByIDJoinsArtist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.artist(t, "Bill Evans", 7)
	al := f.album(t, a.ID, "Sunday at the Village Vanguard")

	got, err := f.albums.GetByID(ctx, al.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunday at the Village Vanguard", got.Name)
	assert.Equal(t, 1959, got.Year)
	assert.Equal(t, "Bill Evans", got.Artist.Name)

	_, err = f.albums.GetByID(ctx, missingID)
	assertKind(t, err, apperr.KindNotFound)
}

func TestAlbumRepository_ListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.artist(t, "A", 0)
	b := f.artist(t, "B", 0)
	f.album(t, a.ID, "A1")
	f.album(t, a.ID, "A2")
	hiddenAlbum := f.album(t, b.ID, "B1")
	hidden := true
	require.NoError(t, f.albums.Update(ctx, hiddenAlbum.ID, AlbumPatch{Hidden: &hidden}))

	albums, err := f.albums.List(ctx, AlbumFilter{ArtistID: a.ID}, Page{})
	require.NoError(t, err)
	assert.Len(t, albums, 2)
	for _, al := range albums {
		assert.Equal(t, "A", al.Artist.Name)
	}

	albums, err = f.albums.List(ctx, AlbumFilter{Hidden: &hidden}, Page{})
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, hiddenAlbum.ID, albums[0].ID)

	_, err = f.albums.List(ctx, AlbumFilter{ArtistID: missingID}, Page{})
	assertKind(t, err, apperr.KindNotFound)
}

func TestAlbumRepository_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.artist(t, "Nina Simone", 0)
	al := f.album(t, a.ID, "Pastel Blues")
	f.track(t, a.ID, al.ID, "Sinnerman")

	year := 1965
	require.NoError(t, f.albums.Update(ctx, al.ID, AlbumPatch{Year: &year}))
	got, err := f.albums.GetByID(ctx, al.ID)
	require.NoError(t, err)
	assert.Equal(t, 1965, got.Year)
	assert.Equal(t, "Pastel Blues", got.Name)

	require.NoError(t, f.albums.Delete(ctx, al.ID))
	assertKind(t, f.albums.Delete(ctx, al.ID), apperr.KindNotFound)

	tracks, err := f.tracks.List(ctx, TrackFilter{}, Page{})
	require.NoError(t, err)
	assert.Empty(t, tracks, "tracks go with their album")
}
