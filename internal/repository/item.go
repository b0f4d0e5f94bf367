package repository

import (
	"context"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	// Item operations
	GetAllItems(ctx context.Context) ([]domain.StoredItem, error)
	GetItemByID(ctx context.Context, id domain.ItemID) (*domain.StoredItem, error)
	InsertItem(ctx context.Context, item *domain.StoredItem) error
	UpdateItem(ctx context.Context, item *domain.StoredItem) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
