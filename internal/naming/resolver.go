package naming

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/metrics"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
)

// ErrAmbiguousName is returned when a partial name matches more than one item
var ErrAmbiguousName = errors.New("ambiguous item name")

var idPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// Resolver turns free-form player input into an item definition
type Resolver interface {
	// Resolve tries, in order: display name, alias, "#id" or bare id, unique name prefix
	Resolve(query string) (domain.ItemDefinition, error)

	// AliasesFor returns the aliases registered for an item, sorted
	AliasesFor(id domain.ItemID) []string
}

type resolution struct {
	def domain.ItemDefinition
	err error
}

type resolver struct {
	reg *registry.Registry

	// Mapping: folded alias -> item id
	aliases map[string]domain.ItemID

	// Reverse lookup: item id -> aliases as written
	byItem map[domain.ItemID][]string

	// Folded query -> outcome; the registry is sealed so entries never go stale
	cache *lru.Cache[string, resolution]
}

// NewResolver creates a resolver over a sealed registry.
// Every alias must point at a defined item.
func NewResolver(reg *registry.Registry, aliases map[string]domain.ItemID, cacheSize int) (Resolver, error) {
	cache, err := lru.New[string, resolution](cacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtCacheInit, err)
	}

	r := &resolver{
		reg:     reg,
		aliases: make(map[string]domain.ItemID, len(aliases)),
		byItem:  make(map[domain.ItemID][]string),
		cache:   cache,
	}

	for alias, id := range aliases {
		if _, err := reg.LookupByID(id); err != nil {
			return nil, fmt.Errorf(ErrFmtAliasUnknownItem, alias, id, err)
		}
		key := registry.NameKey(alias)
		if other, ok := r.aliases[key]; ok && other != id {
			return nil, fmt.Errorf(ErrFmtAliasConflict, alias, other, id, domain.ErrInvalidInput)
		}
		r.aliases[key] = id
		r.byItem[id] = append(r.byItem[id], alias)
	}
	for id := range r.byItem {
		sort.Strings(r.byItem[id])
	}

	return r, nil
}

// Resolve converts player input into an item definition
func (r *resolver) Resolve(query string) (domain.ItemDefinition, error) {
	key := registry.NameKey(query)

	if cached, ok := r.cache.Get(key); ok {
		metrics.RecordLookup(metrics.LookupResolve, cached.err)
		return cached.def, cached.err
	}

	def, err := r.resolveUncached(query, key)
	r.cache.Add(key, resolution{def: def, err: err})
	metrics.RecordLookup(metrics.LookupResolve, err)

	return def, err
}

func (r *resolver) resolveUncached(query, key string) (domain.ItemDefinition, error) {
	if key == "" {
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtNoMatch, domain.ErrNotFound, query)
	}

	if def, err := r.reg.LookupByName(query); err == nil {
		return def, nil
	}

	if id, ok := r.aliases[key]; ok {
		return r.reg.LookupByID(id)
	}

	if id, ok := parseID(key); ok {
		return r.reg.LookupByID(id)
	}

	return r.resolvePrefix(query, key)
}

// resolvePrefix matches key against the start of every folded display name
func (r *resolver) resolvePrefix(query, key string) (domain.ItemDefinition, error) {
	var matches []domain.ItemDefinition
	for def := range r.reg.All() {
		if strings.HasPrefix(registry.NameKey(def.DisplayName), key) {
			matches = append(matches, def)
		}
	}

	switch len(matches) {
	case 0:
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtNoMatch, domain.ErrNotFound, query)
	case 1:
		return matches[0], nil
	default:
		return domain.ItemDefinition{}, fmt.Errorf(ErrFmtAmbiguous, ErrAmbiguousName, query, suggestionList(matches))
	}
}

// AliasesFor returns the aliases registered for an item
func (r *resolver) AliasesFor(id domain.ItemID) []string {
	aliases := r.byItem[id]
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}

// parseID accepts "#2" and "2". Signs and leading zeros are not ids.
func parseID(key string) (domain.ItemID, bool) {
	digits := strings.TrimPrefix(key, IDPrefix)
	if !idPattern.MatchString(digits) {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return domain.ItemID(n), true
}

func suggestionList(matches []domain.ItemDefinition) string {
	names := make([]string, 0, MaxSuggestions)
	for i, def := range matches {
		if i == MaxSuggestions {
			names = append(names, "...")
			break
		}
		names = append(names, fmt.Sprintf("'%s'", def.DisplayName))
	}
	return strings.Join(names, ", ")
}
