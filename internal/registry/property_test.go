package registry

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
)

// TestRegistry_Properties checks lookup round-trips and duplicate rejection
// against a model built from random define sequences.
func TestRegistry_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := NewBuilder()

		var accepted []domain.ItemDefinition
		ids := make(map[domain.ItemID]bool)
		names := make(map[string]bool)

		n := rapid.IntRange(0, 30).Draw(rt, "n")
		for i := 0; i < n; i++ {
			id := domain.ItemID(rapid.IntRange(-2, 20).Draw(rt, "id"))
			name := rapid.StringMatching(`[A-Za-z ]{0,8}`).Draw(rt, "name")

			def, err := b.Define(id, name, nil)

			switch {
			case id <= 0:
				if !errors.Is(err, domain.ErrInvalidID) {
					rt.Fatalf("Define(%d, %q): want ErrInvalidID, got %v", id, name, err)
				}
			case NameKey(name) == "":
				if !errors.Is(err, domain.ErrInvalidName) {
					rt.Fatalf("Define(%d, %q): want ErrInvalidName, got %v", id, name, err)
				}
			case ids[id]:
				if !errors.Is(err, domain.ErrDuplicateID) {
					rt.Fatalf("Define(%d, %q): want ErrDuplicateID, got %v", id, name, err)
				}
			case names[NameKey(name)]:
				if !errors.Is(err, domain.ErrDuplicateName) {
					rt.Fatalf("Define(%d, %q): want ErrDuplicateName, got %v", id, name, err)
				}
			default:
				if err != nil {
					rt.Fatalf("Define(%d, %q): unexpected error %v", id, name, err)
				}
				accepted = append(accepted, def)
				ids[id] = true
				names[NameKey(name)] = true
			}
		}

		reg := b.Seal()
		if reg.Len() != len(accepted) {
			rt.Fatalf("Len() = %d, want %d", reg.Len(), len(accepted))
		}

		for _, want := range accepted {
			got, err := reg.LookupByID(want.ID)
			if err != nil || got != want {
				rt.Fatalf("LookupByID(%d) = %+v, %v; want %+v", want.ID, got, err, want)
			}
			got, err = reg.LookupByName(want.DisplayName)
			if err != nil || got != want {
				rt.Fatalf("LookupByName(%q) = %+v, %v; want %+v", want.DisplayName, got, err, want)
			}
		}

		for pass := 0; pass < 2; pass++ {
			i := 0
			for def := range reg.All() {
				if i >= len(accepted) || def != accepted[i] {
					rt.Fatalf("All() pass %d: position %d = %+v", pass, i, def)
				}
				i++
			}
			if i != len(accepted) {
				rt.Fatalf("All() pass %d yielded %d definitions, want %d", pass, i, len(accepted))
			}
		}

		missing := domain.ItemID(rapid.IntRange(21, 100).Draw(rt, "missing"))
		if _, err := reg.LookupByID(missing); !errors.Is(err, domain.ErrNotFound) {
			rt.Fatalf("LookupByID(%d): want ErrNotFound, got %v", missing, err)
		}
	})
}
