package item

// ==================== Configuration Names ====================

const (
	// ConfigName identifies the item catalog in sync metadata
	ConfigName = "items"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgConvertYAMLFailed    = "failed to convert YAML items config: %w"
	ErrMsgReadEmbeddedFailed   = "failed to read embedded items config: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgGetSyncMetadataFailed  = "failed to get sync metadata: %w"
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgUpdateItemFailed       = "failed to update item %d: %w"
	ErrMsgInsertItemFailed       = "failed to insert item %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Items config unchanged, skipping sync"
	LogMsgSyncCompleted        = "Items sync completed"
	LogMsgUpdatedItem          = "Updated item"
	LogMsgInsertedItem         = "Inserted item"
	LogMsgStaleItem            = "Stored item no longer in catalog"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgRegistryBuilt        = "Item registry sealed"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndex         = "item at index %d: %w"
	ErrFmtItemBlankName       = "%w: item %d has a blank display_name"
	ErrFmtDuplicateAlias      = "%w: alias '%s' is used by items %d and %d"
	ErrFmtAliasShadowsName    = "%w: alias '%s' of item %d is the display name of item %d"
	ErrFmtItemUnknownBehavior = "%w: item %d: %w"
	ErrFmtConfigInvalidField  = "%w: field '%s' failed '%s'"
	ErrFmtSchemaValidation    = "schema validation failed for %s: %w"
)
