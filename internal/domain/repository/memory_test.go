package repository

import (
	"context"
	"sync"
	"testing"
	"wings_inventory/internal/common"
	"wings_inventory/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	id, err := repo.Create(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = repo.Create(ctx, "alice", "h2")
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)

	_, err = repo.Create(ctx, "bob", "h3")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Update(ctx, "alice", "bob", ""), common.ErrDuplicateUsername)
	require.NoError(t, repo.Update(ctx, "alice", "carol", ""))

	u, err := repo.FindByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "h1", u.HashedPassword)

	require.NoError(t, repo.Update(ctx, "carol", "", "h9"))
	u, err = repo.FindByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "h9", u.HashedPassword)

	_, err = repo.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "carol"))
	assert.ErrorIs(t, repo.Delete(ctx, "carol"), common.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, "carol", "x", ""), common.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.UserSummary{{ID: list[0].ID, Username: "bob"}}, list)
}

func TestMemoryUserRepository_ConcurrentCreateSameName(t *testing.T) {
	repo := NewMemoryUserRepository()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), "dup", "h")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, common.ErrDuplicateUsername)
	}
	assert.Equal(t, 1, ok)
}

func TestMemoryProductRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	id1, err := repo.Create(ctx, &model.Product{Name: "Tea", Price: 2.5, Quantity: 10})
	require.NoError(t, err)
	id2, err := repo.Create(ctx, &model.Product{Name: "Coffee", Price: 3, Quantity: 1})
	require.NoError(t, err)
	assert.Less(t, id1, id2)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tea", list[0].Name)

	require.NoError(t, repo.Update(ctx, &model.Product{ID: id1, Name: "Tea", Price: 2.5, Quantity: 5}))
	p, err := repo.FindByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Quantity)

	assert.ErrorIs(t, repo.Update(ctx, &model.Product{ID: 99}), common.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, id1))
	assert.ErrorIs(t, repo.Delete(ctx, id1), common.ErrNotFound)
	_, err = repo.FindByID(ctx, id1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepositories_HonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryUserRepository().Create(ctx, "a", "b")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewMemoryProductRepository().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
