package repository

import (
	"context"
	"testing"

	"music_library/internal/apperr"
	"music_library/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_RegisterFirstUserIsAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.users.Register(ctx, "first@x.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, first.Role)

	for _, email := range []string{"second@x.com", "third@x.com"} {
		u, err := f.users.Register(ctx, email, "hash")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleViewer, u.Role)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, "a@x.com", "hash")
	require.NoError(t, err)

	_, err = f.users.Register(ctx, "a@x.com", "other-hash")
	assertKind(t, err, apperr.KindConflict)
	assert.Equal(t, "Email already exists.", err.Error())

	_, err = f.users.Create(ctx, "a@x.com", "hash", domain.RoleEditor)
	assertKind(t, err, apperr.KindConflict)
}

func TestUserRepository_ListByRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Register(ctx, "admin@x.com", "hash")
	require.NoError(t, err)
	_, err = f.users.Create(ctx, "editor@x.com", "hash", domain.RoleEditor)
	require.NoError(t, err)
	_, err = f.users.Create(ctx, "viewer@x.com", "hash", domain.RoleViewer)
	require.NoError(t, err)

	users, err := f.users.List(ctx, UserFilter{Role: domain.RoleEditor}, Page{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "editor@x.com", users[0].Email)

	users, err = f.users.List(ctx, UserFilter{}, Page{})
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserRepository_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, err := f.users.Register(ctx, "admin@x.com", "hash")
	require.NoError(t, err)
	editor, err := f.users.Create(ctx, "editor@x.com", "hash", domain.RoleEditor)
	require.NoError(t, err)
	viewer, err := f.users.Create(ctx, "viewer@x.com", "hash", domain.RoleViewer)
	require.NoError(t, err)

	err = f.users.Delete(ctx, admin.ID, editor.ID)
	assertKind(t, err, apperr.KindForbidden)
	assert.Equal(t, "Cannot delete admin user.", err.Error())

	err = f.users.Delete(ctx, editor.ID, editor.ID)
	assertKind(t, err, apperr.KindForbidden)
	assert.Equal(t, "Cannot delete your own account.", err.Error())

	assertKind(t, f.users.Delete(ctx, missingID, admin.ID), apperr.KindNotFound)

	require.NoError(t, f.users.Delete(ctx, viewer.ID, admin.ID))
	_, err = f.users.GetByID(ctx, viewer.ID)
	assertKind(t, err, apperr.KindNotFound)
}

func TestUserRepository_DeleteRemovesFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, err := f.users.Register(ctx, "admin@x.com", "hash")
	require.NoError(t, err)
	viewer, err := f.users.Register(ctx, "viewer@x.com", "hash")
	require.NoError(t, err)
	a := f.artist(t, "Louis Armstrong", 1)
	_, err = f.favorites.Add(ctx, viewer.ID, domain.CategoryArtist, a.ID)
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, viewer.ID, admin.ID))

	var count int64
	require.NoError(t, f.db.Model(&domain.Favorite{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Register(ctx, "a@x.com", "old-hash")
	require.NoError(t, err)

	require.NoError(t, f.users.UpdatePassword(ctx, u.ID, "new-hash"))
	got, err := f.users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)

	assertKind(t, f.users.UpdatePassword(ctx, missingID, "x"), apperr.KindNotFound)
}
