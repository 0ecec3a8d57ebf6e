package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-service/internal/entity"
)

func TestAddThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	alice := entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, repo.Add(ctx, alice))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, *got)
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"}))
	err := repo.Add(ctx, entity.User{ID: 1, Name: "Bob", Email: "bob@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, repo.Len(ctx))
}

func TestUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"}))

	err := repo.Update(ctx, 99, entity.User{ID: 99, Name: "Nobody", Email: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, 1, repo.Len(ctx))
}

func TestUpdateKeepsPositionAndForcesID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"}))
	require.NoError(t, repo.Add(ctx, entity.User{ID: 2, Name: "Bob", Email: "bob@example.com"}))

	// Body carries a different id; the path id wins.
	require.NoError(t, repo.Update(ctx, 1, entity.User{ID: 7, Name: "Alicia", Email: "alicia@example.com"}))

	users := repo.List(ctx, 1, 10)
	require.Len(t, users, 2)
	assert.Equal(t, entity.User{ID: 1, Name: "Alicia", Email: "alicia@example.com"}, users[0])
	assert.Equal(t, "Bob", users[1].Name)
}

func TestDeleteRemovesDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	// Seed duplicates directly; Add rejects them since uniqueness became enforced.
	repo.users = []entity.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 1, Name: "Alice2", Email: "alice2@example.com"},
	}

	require.NoError(t, repo.Delete(ctx, 1))
	assert.Equal(t, 1, repo.Len(ctx))

	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	assert.ErrorIs(t, repo.Delete(ctx, 1), ErrUserNotFound)
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"}))
	require.NoError(t, repo.Add(ctx, entity.User{ID: 2, Name: "Bob", Email: "bob@example.com"}))

	second := repo.List(ctx, 2, 1)
	require.Len(t, second, 1)
	assert.Equal(t, 2, second[0].ID)

	assert.Empty(t, repo.List(ctx, 3, 1))
	assert.Empty(t, repo.List(ctx, 5, 10))
}

func TestListClampsBadInput(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Add(ctx, entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"}))

	assert.Len(t, repo.List(ctx, 0, 0), 1)
	assert.Len(t, repo.List(ctx, -3, -1), 1)
}
