package repository

import (
	"context"
	"testing"

	"music_library/internal/apperr"
	"music_library/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_AddListRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "fan@x.com", "hash")
	require.NoError(t, err)
	a := f.artist(t, "Ella Fitzgerald", 13)

	fav, err := f.favorites.Add(ctx, user.ID, domain.CategoryArtist, a.ID)
	require.NoError(t, err)

	items, err := f.favorites.List(ctx, user.ID, domain.CategoryArtist, Page{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fav.ID, items[0].ID)
	assert.Equal(t, a.ID, items[0].ItemID)
	require.NotNil(t, items[0].Name)
	assert.Equal(t, "Ella Fitzgerald", *items[0].Name)

	items, err = f.favorites.List(ctx, user.ID, domain.CategoryAlbum, Page{})
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, f.favorites.Remove(ctx, user.ID, fav.ID))
	assertKind(t, f.favorites.Remove(ctx, user.ID, fav.ID), apperr.KindNotFound)
}

func TestFavoriteRepository_AddRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "fan@x.com", "hash")
	require.NoError(t, err)
	a := f.artist(t, "Ella Fitzgerald", 13)

	_, err = f.favorites.Add(ctx, user.ID, domain.CategoryTrack, a.ID)
	assertKind(t, err, apperr.KindNotFound)

	_, err = f.favorites.Add(ctx, user.ID, domain.CategoryArtist, a.ID)
	require.NoError(t, err)
	_, err = f.favorites.Add(ctx, user.ID, domain.CategoryArtist, a.ID)
	assertKind(t, err, apperr.KindConflict)

	_, err = f.favorites.Add(ctx, user.ID, domain.Category("playlist"), a.ID)
	assertKind(t, err, apperr.KindBadRequest)
}

func TestFavoriteRepository_ScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner, err := f.users.Register(ctx, "owner@x.com", "hash")
	require.NoError(t, err)
	other, err := f.users.Register(ctx, "other@x.com", "hash")
	require.NoError(t, err)
	a := f.artist(t, "Sarah Vaughan", 2)

	fav, err := f.favorites.Add(ctx, owner.ID, domain.CategoryArtist, a.ID)
	require.NoError(t, err)

	assertKind(t, f.favorites.Remove(ctx, other.ID, fav.ID), apperr.KindNotFound)

	items, err := f.favorites.List(ctx, other.ID, domain.CategoryArtist, Page{})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = f.favorites.Add(ctx, other.ID, domain.CategoryArtist, a.ID)
	assert.NoError(t, err, "uniqueness is per user")
}

func TestFavoriteRepository_OrphanedTargetHasNoName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "fan@x.com", "hash")
	require.NoError(t, err)
	a := f.artist(t, "Billie Holiday", 0)
	al := f.album(t, a.ID, "Lady in Satin")

	_, err = f.favorites.Add(ctx, user.ID, domain.CategoryAlbum, al.ID)
	require.NoError(t, err)
	require.NoError(t, f.artists.Delete(ctx, a.ID))

	items, err := f.favorites.List(ctx, user.ID, domain.CategoryAlbum, Page{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Name)
	assert.Equal(t, al.ID, items[0].ItemID)
}
