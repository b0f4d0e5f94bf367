// Package registry holds the closed table of item definitions.
//
// A Builder accepts definitions during initialization. Seal turns it into a
// Registry, which never changes again and is safe for concurrent readers
// without locking. Define must not be called concurrently.
package registry

import (
	"fmt"
	"iter"
	"strings"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
)

// table is the arena of definitions plus its id and name indexes.
// Indexes point into defs, which is append-only while building.
type table struct {
	defs   []domain.ItemDefinition
	byID   map[domain.ItemID]int
	byName map[string]int
}

// Builder collects item definitions before the registry is sealed
type Builder struct {
	t      table
	sealed *Registry
}

// NewBuilder creates an empty Builder
func NewBuilder() *Builder {
	return &Builder{
		t: table{
			byID:   make(map[domain.ItemID]int),
			byName: make(map[string]int),
		},
	}
}

// Define registers one item definition. On error nothing is added.
func (b *Builder) Define(id domain.ItemID, displayName string, behavior domain.ItemBehavior) (domain.ItemDefinition, error) {
	if b.sealed != nil {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtSealedDefine, domain.ErrSealed, id)
	}
	if id <= 0 {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtInvalidID, domain.ErrInvalidID, id)
	}
	if strings.TrimSpace(displayName) == "" {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtInvalidName, domain.ErrInvalidName, id)
	}
	if idx, ok := b.t.byID[id]; ok {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtDuplicateID, domain.ErrDuplicateID, id, b.t.defs[idx].DisplayName)
	}

	key := NameKey(displayName)
	if idx, ok := b.t.byName[key]; ok {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtDuplicateName, domain.ErrDuplicateName, displayName, b.t.defs[idx].ID)
	}

	def := domain.ItemDefinition{
		ID:          id,
		DisplayName: displayName,
		Behavior:    behavior,
	}
	b.t.defs = append(b.t.defs, def)
	b.t.byID[id] = len(b.t.defs) - 1
	b.t.byName[key] = len(b.t.defs) - 1

	return def, nil
}

// Len returns the number of definitions registered so far
func (b *Builder) Len() int {
	return len(b.t.defs)
}

// Sealed reports whether Seal has been called
func (b *Builder) Sealed() bool {
	return b.sealed != nil
}

// Seal ends the building phase and returns the read-only Registry.
// Subsequent calls return the same Registry; Define fails from now on.
func (b *Builder) Seal() *Registry {
	if b.sealed == nil {
		b.sealed = &Registry{t: b.t}
	}
	return b.sealed
}

// Registry is the sealed, read-only item table
type Registry struct {
	t table
}

// LookupByID returns the definition registered under id
func (r *Registry) LookupByID(id domain.ItemID) (domain.ItemDefinition, error) {
	idx, ok := r.t.byID[id]
	if !ok {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtNotFoundByID, domain.ErrNotFound, id)
	}
	return r.t.defs[idx], nil
}

// LookupByName returns the definition whose display name matches name.
// Matching ignores case and Unicode compatibility differences.
func (r *Registry) LookupByName(name string) (domain.ItemDefinition, error) {
	idx, ok := r.t.byName[NameKey(name)]
	if !ok {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtNotFoundByName, domain.ErrNotFound, name)
	}
	return r.t.defs[idx], nil
}

// All yields every definition in registration order.
// The sequence can be ranged over any number of times.
func (r *Registry) All() iter.Seq[domain.ItemDefinition] {
	return func(yield func(domain.ItemDefinition) bool) {
		for _, def := range r.t.defs {
			if !yield(def) {
				return
			}
		}
	}
}

// Len returns the number of definitions in the registry
func (r *Registry) Len() int {
	return len(r.t.defs)
}
