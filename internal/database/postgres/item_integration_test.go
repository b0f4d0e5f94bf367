package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/enderryno/nuclearcraft-items/internal/database"
	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/item"
)

// setupTestPool starts a throwaway Postgres, applies migrations and returns a pool.
// The test is skipped when Docker is unavailable.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  connStr,
		MaxConns:    4,
		MaxConnIdle: time.Minute,
		MaxConnLife: time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))

	return pool
}

func TestItemRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	repo := NewItemRepository(pool)

	t.Run("migrations applied", func(t *testing.T) {
		statuses, err := database.Status(ctx, pool)
		require.NoError(t, err)
		require.NotEmpty(t, statuses)
		for _, s := range statuses {
			assert.True(t, s.Applied, "migration %s should be applied", s.Path)
		}
	})

	t.Run("insert and read back", func(t *testing.T) {
		breather := "breather"
		require.NoError(t, repo.InsertItem(ctx, &domain.StoredItem{ID: 10, DisplayName: "Hazmat Suit"}))
		require.NoError(t, repo.InsertItem(ctx, &domain.StoredItem{ID: 11, DisplayName: "Rebreather", Behavior: &breather}))

		got, err := repo.GetItemByID(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, "Rebreather", got.DisplayName)
		require.NotNil(t, got.Behavior)
		assert.Equal(t, breather, *got.Behavior)

		all, err := repo.GetAllItems(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, domain.ItemID(10), all[0].ID)
		assert.Nil(t, all[0].Behavior)
	})

	t.Run("duplicate display name rejected by index", func(t *testing.T) {
		err := repo.InsertItem(ctx, &domain.StoredItem{ID: 12, DisplayName: "hazmat suit"})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("duplicate id rejected by primary key", func(t *testing.T) {
		err := repo.InsertItem(ctx, &domain.StoredItem{ID: 10, DisplayName: "Lead Apron"})
		assert.ErrorIs(t, err, domain.ErrDuplicateID)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, repo.UpdateItem(ctx, &domain.StoredItem{ID: 10, DisplayName: "Hazmat Suit Mk2"}))
		got, err := repo.GetItemByID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "Hazmat Suit Mk2", got.DisplayName)

		err = repo.UpdateItem(ctx, &domain.StoredItem{ID: 404, DisplayName: "Ghost"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := repo.GetItemByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ids wider than 32 bits stay distinct", func(t *testing.T) {
		wide := domain.ItemID(1<<32 + 1)
		require.NoError(t, repo.InsertItem(ctx, &domain.StoredItem{ID: 1, DisplayName: "Dosimeter"}))
		require.NoError(t, repo.InsertItem(ctx, &domain.StoredItem{ID: wide, DisplayName: "Geiger Counter"}))

		low, err := repo.GetItemByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Dosimeter", low.DisplayName)

		high, err := repo.GetItemByID(ctx, wide)
		require.NoError(t, err)
		assert.Equal(t, wide, high.ID)
		assert.Equal(t, "Geiger Counter", high.DisplayName)
	})

	t.Run("sync metadata round trip", func(t *testing.T) {
		_, err := repo.GetSyncMetadata(ctx, "nothing-yet")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		now := time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{ConfigName: "test", LastSyncTime: now, FileHash: "a"}))
		require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{ConfigName: "test", LastSyncTime: now, FileHash: "b"}))

		meta, err := repo.GetSyncMetadata(ctx, "test")
		require.NoError(t, err)
		assert.Equal(t, "b", meta.FileHash)
		assert.True(t, now.Equal(meta.LastSyncTime))
	})
}

func TestSyncToDatabase_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	repo := NewItemRepository(pool)

	loader := item.NewLoader()
	config, err := item.LoadDefault(loader)
	require.NoError(t, err)
	reg, err := loader.Build(config, nil)
	require.NoError(t, err)

	first, err := item.SyncToDatabase(ctx, config, reg, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, first.ItemsInserted)

	second, err := item.SyncToDatabase(ctx, config, reg, repo)
	require.NoError(t, err)
	assert.True(t, second.Unchanged)

	mask, err := repo.GetItemByID(ctx, domain.ItemGasMask)
	require.NoError(t, err)
	assert.Equal(t, "Gas Mask", mask.DisplayName)
}
