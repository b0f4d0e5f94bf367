package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/enderryno/nuclearcraft-items/internal/behavior"
	"github.com/enderryno/nuclearcraft-items/internal/config"
	"github.com/enderryno/nuclearcraft-items/internal/item"
	"github.com/enderryno/nuclearcraft-items/internal/metrics"
	"github.com/enderryno/nuclearcraft-items/internal/naming"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
)

// Catalog bundles the sealed registry with the config it was built from
// and the resolver that serves free-form name lookups against it.
type Catalog struct {
	Config   *item.Config
	Registry *registry.Registry
	Resolver naming.Resolver
}

// LoadCatalog loads the items file named by cfg (or the embedded seed catalog),
// builds and seals the registry, and creates the name resolver.
func LoadCatalog(cfg *config.Config, behaviors *behavior.Catalog) (*Catalog, error) {
	source := cfg.ItemsConfigPath
	if source == "" {
		source = CatalogSourceEmbedded
	}
	slog.Info(LogMsgLoadingCatalog, "source", source)

	loader := item.NewLoader()

	var (
		itemConfig *item.Config
		err        error
	)
	if cfg.ItemsConfigPath == "" {
		itemConfig, err = item.LoadDefault(loader)
	} else {
		itemConfig, err = loader.Load(cfg.ItemsConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	reg, err := loader.Build(itemConfig, behaviors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildItems, err)
	}

	resolver, err := naming.NewResolver(reg, itemConfig.Aliases(), cfg.ResolverCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedResolver, err)
	}

	metrics.RegistryDefinitions.Set(float64(reg.Len()))
	slog.Info(LogMsgCatalogReady,
		"items", reg.Len(),
		"version", itemConfig.Version,
		"checksum", itemConfig.Checksum)

	return &Catalog{Config: itemConfig, Registry: reg, Resolver: resolver}, nil
}
