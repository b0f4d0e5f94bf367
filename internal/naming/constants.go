package naming

// IDPrefix marks a query as an explicit item id, as in "#2"
const IDPrefix = "#"

// MaxSuggestions caps the candidate names listed in an ambiguity error
const MaxSuggestions = 5

// Error format strings
const (
	ErrFmtAliasUnknownItem = "alias '%s' points at unknown item %d: %w"
	ErrFmtAliasConflict    = "alias '%s' is defined for items %d and %d: %w"
	ErrFmtAmbiguous        = "%w: '%s' matches %s"
	ErrFmtNoMatch          = "%w: '%s'"
	ErrFmtCacheInit        = "failed to create resolver cache: %w"
)
