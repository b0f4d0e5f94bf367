package domain

import "time"

// SyncMetadata tracks the last sync of an item catalog into the database
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
}

// StoredItem is the persisted mirror of an ItemDefinition.
// Behavior is kept by name only; nil means the item has no behavior.
type StoredItem struct {
	ID          ItemID    `json:"id" db:"item_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Behavior    *string   `json:"behavior,omitempty" db:"behavior"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
