package registry

// Error format strings used with fmt.Errorf
const (
	ErrFmtInvalidID      = "%w: %d"
	ErrFmtInvalidName    = "%w: item %d has an empty display name"
	ErrFmtDuplicateID    = "%w: %d is already defined as '%s'"
	ErrFmtDuplicateName  = "%w: '%s' is already defined by item %d"
	ErrFmtSealedDefine   = "%w: cannot define item %d"
	ErrFmtNotFoundByID   = "%w: id %d"
	ErrFmtNotFoundByName = "%w: name '%s'"
)
