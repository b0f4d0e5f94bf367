package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names from the items migration
const (
	ConstraintItemsPrimaryKey     = "items_pkey"
	ConstraintItemsDisplayNameKey = "items_display_name_lower_idx"
)
