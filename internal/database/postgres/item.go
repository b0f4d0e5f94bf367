package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enderryno/nuclearcraft-items/internal/database/generated"
	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/repository"
)

// ItemRepository implements repository.Item for PostgreSQL using sqlc
type ItemRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) repository.Item {
	return &ItemRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// GetAllItems retrieves all stored items ordered by id
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.StoredItem, error) {
	rows, err := r.q.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}

	items := make([]domain.StoredItem, len(rows))
	for i, row := range rows {
		items[i] = toStoredItem(row)
	}
	return items, nil
}

// GetItemByID retrieves a stored item by id
func (r *ItemRepository) GetItemByID(ctx context.Context, id domain.ItemID) (*domain.StoredItem, error) {
	row, err := r.q.GetItemByID(ctx, int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	item := toStoredItem(row)
	return &item, nil
}

// InsertItem stores a new item
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.StoredItem) error {
	params := generated.InsertItemParams{
		ItemID:      int64(item.ID),
		DisplayName: item.DisplayName,
		Behavior:    ptrToText(item.Behavior),
	}

	if err := r.q.InsertItem(ctx, params); err != nil {
		if dupErr := duplicateError(err, item); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem overwrites the display name and behavior of a stored item
func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.StoredItem) error {
	params := generated.UpdateItemParams{
		ItemID:      int64(item.ID),
		DisplayName: item.DisplayName,
		Behavior:    ptrToText(item.Behavior),
	}

	affected, err := r.q.UpdateItem(ctx, params)
	if err != nil {
		if dupErr := duplicateError(err, item); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("failed to update item: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, item.ID)
	}
	return nil
}

// GetSyncMetadata retrieves the last sync record for a config
func (r *ItemRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	row, err := r.q.GetSyncMetadata(ctx, configName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sync metadata '%s'", domain.ErrNotFound, configName)
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}

	return &domain.SyncMetadata{
		ConfigName:   row.ConfigName,
		LastSyncTime: row.LastSyncTime.Time,
		FileHash:     row.FileHash,
	}, nil
}

// UpsertSyncMetadata records a completed sync
func (r *ItemRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	params := generated.UpsertSyncMetadataParams{
		ConfigName:   metadata.ConfigName,
		LastSyncTime: pgtype.Timestamptz{Time: metadata.LastSyncTime, Valid: true},
		FileHash:     metadata.FileHash,
	}

	if err := r.q.UpsertSyncMetadata(ctx, params); err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}

// duplicateError maps unique violations on the items table to domain errors.
// It returns nil for any other error.
func duplicateError(err error, item *domain.StoredItem) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case ConstraintItemsPrimaryKey:
		return fmt.Errorf("%w: id %d", domain.ErrDuplicateID, item.ID)
	case ConstraintItemsDisplayNameKey:
		return fmt.Errorf("%w: '%s'", domain.ErrDuplicateName, item.DisplayName)
	default:
		return nil
	}
}

func toStoredItem(row generated.Item) domain.StoredItem {
	return domain.StoredItem{
		ID:          domain.ItemID(row.ItemID),
		DisplayName: row.DisplayName,
		Behavior:    textToPtr(row.Behavior),
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
