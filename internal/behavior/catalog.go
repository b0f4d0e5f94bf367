// Package behavior keeps the named item behaviors a catalog file may reference.
package behavior

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
)

// Sentinel errors for the behavior catalog
var (
	ErrUnknownBehavior   = errors.New("unknown behavior")
	ErrDuplicateBehavior = errors.New("duplicate behavior")
	ErrInvalidBehavior   = errors.New("invalid behavior")
)

// Catalog maps behavior names to implementations.
// It is populated during initialization, like the item registry itself.
type Catalog struct {
	byName map[string]domain.ItemBehavior
}

// NewCatalog creates an empty Catalog
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]domain.ItemBehavior)}
}

// Register adds a behavior under its exact BehaviorName.
// Names with surrounding whitespace are rejected so the registered key is
// the same string that gets persisted and looked up.
func (c *Catalog) Register(b domain.ItemBehavior) error {
	if b == nil {
		return fmt.Errorf("%w: nil behavior", ErrInvalidBehavior)
	}
	name := b.BehaviorName()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty behavior name", ErrInvalidBehavior)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: surrounding whitespace in '%s'", ErrInvalidBehavior, name)
	}
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: '%s'", ErrDuplicateBehavior, name)
	}
	c.byName[name] = b
	return nil
}

// Lookup returns the behavior registered under name
func (c *Catalog) Lookup(name string) (domain.ItemBehavior, error) {
	b, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownBehavior, name)
	}
	return b, nil
}

// Names returns the registered behavior names, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named is a behavior identified only by its name
type Named string

// BehaviorName implements domain.ItemBehavior
func (n Named) BehaviorName() string {
	return string(n)
}
