package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/logger"
	"github.com/enderryno/nuclearcraft-items/internal/metrics"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
	"github.com/enderryno/nuclearcraft-items/internal/repository"
)

// SyncResult contains the result of syncing items to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
	ItemsStale    int
	Unchanged     bool
}

// SyncToDatabase mirrors the sealed registry into the repository idempotently.
// The sync is skipped when the config checksum matches the last recorded sync.
// Stored items missing from the registry are reported, never deleted: ids are not reused.
func SyncToDatabase(ctx context.Context, config *Config, reg *registry.Registry, repo repository.Item) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	changed, err := hasConfigChanged(ctx, repo, config.Checksum)
	if err != nil {
		return nil, err
	}
	if !changed {
		log.Info(LogMsgConfigUnchanged, "checksum", config.Checksum)
		return &SyncResult{Unchanged: true}, nil
	}

	existing, err := repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}

	existingByID := make(map[domain.ItemID]*domain.StoredItem, len(existing))
	for i := range existing {
		existingByID[existing[i].ID] = &existing[i]
	}

	result := &SyncResult{}
	for def := range reg.All() {
		if err := syncOneItem(ctx, repo, def, existingByID, result); err != nil {
			return nil, err
		}
		delete(existingByID, def.ID)
	}

	for id, stale := range existingByID {
		result.ItemsStale++
		log.Warn(LogMsgStaleItem, "id", id, "display_name", stale.DisplayName)
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigName,
		LastSyncTime: time.Now(),
		FileHash:     config.Checksum,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	metrics.RecordSync(result.ItemsInserted, result.ItemsUpdated, result.ItemsSkipped)
	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped,
		"stale", result.ItemsStale)

	return result, nil
}

func syncOneItem(ctx context.Context, repo repository.Item, def domain.ItemDefinition, existingByID map[domain.ItemID]*domain.StoredItem, result *SyncResult) error {
	log := logger.FromContext(ctx)
	stored := toStoredItem(def)

	existing, ok := existingByID[def.ID]
	if !ok {
		if err := repo.InsertItem(ctx, stored); err != nil {
			return fmt.Errorf(ErrMsgInsertItemFailed, def.ID, err)
		}
		result.ItemsInserted++
		log.Info(LogMsgInsertedItem, "id", def.ID, "display_name", def.DisplayName)
		return nil
	}

	if existing.DisplayName == stored.DisplayName && equalBehavior(existing.Behavior, stored.Behavior) {
		result.ItemsSkipped++
		return nil
	}

	if err := repo.UpdateItem(ctx, stored); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, def.ID, err)
	}
	result.ItemsUpdated++
	log.Info(LogMsgUpdatedItem, "id", def.ID, "display_name", def.DisplayName)
	return nil
}

// hasConfigChanged compares the checksum against the last recorded sync
func hasConfigChanged(ctx context.Context, repo repository.Item, checksum string) (bool, error) {
	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// First sync - no metadata exists
			return true, nil
		}
		return false, fmt.Errorf(ErrMsgGetSyncMetadataFailed, err)
	}
	return syncMeta.FileHash != checksum, nil
}

func toStoredItem(def domain.ItemDefinition) *domain.StoredItem {
	stored := &domain.StoredItem{
		ID:          def.ID,
		DisplayName: def.DisplayName,
	}
	if def.HasBehavior() {
		name := def.BehaviorName()
		stored.Behavior = &name
	}
	return stored
}

func equalBehavior(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
