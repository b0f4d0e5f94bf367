package item

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/enderryno/nuclearcraft-items/configs"
	"github.com/enderryno/nuclearcraft-items/internal/behavior"
	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/registry"
	"github.com/enderryno/nuclearcraft-items/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Format is the encoding of an items config file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension; JSON is the default
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Config represents the items configuration file
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"required,min=1,dive"`

	// Checksum is the SHA-256 of the raw file, used to skip unchanged syncs
	Checksum string `json:"-"`
}

// Def represents a single item definition in the file
type Def struct {
	ID          int64    `json:"id" validate:"gt=0"`
	DisplayName string   `json:"display_name" validate:"required"`
	Behavior    *string  `json:"behavior,omitempty" validate:"omitempty,min=1"`
	Aliases     []string `json:"aliases,omitempty" validate:"dive,required"`
}

// Aliases returns every alias in the config mapped to its item id
func (c *Config) Aliases() map[string]domain.ItemID {
	aliases := make(map[string]domain.ItemID)
	for _, def := range c.Items {
		for _, alias := range def.Aliases {
			aliases[alias] = domain.ItemID(def.ID)
		}
	}
	return aliases
}

// Loader handles loading, validating and building the item registry
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, format Format) (*Config, error)
	Validate(config *Config) error
	Build(config *Config, behaviors *behavior.Catalog) (*registry.Registry, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(configs.FS),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoadDefault parses the embedded seed catalog
func LoadDefault(l Loader) (*Config, error) {
	data, err := configs.FS.ReadFile(configs.ItemsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadEmbeddedFailed, err)
	}
	return l.Parse(data, FormatJSON)
}

// Load reads and parses an items file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := l.Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes raw config bytes after validating them against the items schema
func (l *itemLoader) Parse(data []byte, format Format) (*Config, error) {
	hash := sha256.Sum256(data)

	jsonData := data
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgConvertYAMLFailed, err)
		}
		jsonData = converted
	}

	if err := l.schemaValidator.ValidateBytes(jsonData, configs.ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaValidation, format, err)
	}

	var config Config
	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	config.Checksum = hex.EncodeToString(hash[:])

	return &config, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one schema
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	if err := l.validate.Struct(config); err != nil {
		return l.formatStructError(err)
	}

	ids := make(map[int64]bool, len(config.Items))
	names := make(map[string]int64, len(config.Items))
	for i := range config.Items {
		if err := l.validateItemDef(i, &config.Items[i], ids, names); err != nil {
			return err
		}
	}

	return l.validateAliases(config, names)
}

func (l *itemLoader) formatStructError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	first := validationErrors[0]
	return fmt.Errorf(ErrFmtConfigInvalidField, ErrInvalidConfig, first.Namespace(), first.Tag())
}

func (l *itemLoader) validateItemDef(index int, def *Def, ids map[int64]bool, names map[string]int64) error {
	if strings.TrimSpace(def.DisplayName) == "" {
		return fmt.Errorf(ErrFmtItemBlankName, domain.ErrInvalidName, def.ID)
	}

	if ids[def.ID] {
		return fmt.Errorf(ErrFmtItemAtIndex, index, fmt.Errorf("%w: %d", domain.ErrDuplicateID, def.ID))
	}
	ids[def.ID] = true

	key := registry.NameKey(def.DisplayName)
	if other, ok := names[key]; ok {
		return fmt.Errorf(ErrFmtItemAtIndex, index, fmt.Errorf("%w: '%s' is also item %d", domain.ErrDuplicateName, def.DisplayName, other))
	}
	names[key] = def.ID

	return nil
}

func (l *itemLoader) validateAliases(config *Config, names map[string]int64) error {
	owners := make(map[string]int64)
	for _, def := range config.Items {
		for _, alias := range def.Aliases {
			key := registry.NameKey(alias)
			if owner, ok := names[key]; ok && owner != def.ID {
				return fmt.Errorf(ErrFmtAliasShadowsName, ErrInvalidConfig, alias, def.ID, owner)
			}
			if owner, ok := owners[key]; ok && owner != def.ID {
				return fmt.Errorf(ErrFmtDuplicateAlias, ErrInvalidConfig, alias, owner, def.ID)
			}
			owners[key] = def.ID
		}
	}
	return nil
}

// Build validates the config, defines every item in file order and seals the registry.
// A nil behavior catalog is treated as empty.
func (l *itemLoader) Build(config *Config, behaviors *behavior.Catalog) (*registry.Registry, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}
	if behaviors == nil {
		behaviors = behavior.NewCatalog()
	}

	b := registry.NewBuilder()
	for i, def := range config.Items {
		var itemBehavior domain.ItemBehavior
		if def.Behavior != nil {
			found, err := behaviors.Lookup(*def.Behavior)
			if err != nil {
				return nil, fmt.Errorf(ErrFmtItemUnknownBehavior, ErrInvalidConfig, def.ID, err)
			}
			itemBehavior = found
		}

		if _, err := b.Define(domain.ItemID(def.ID), def.DisplayName, itemBehavior); err != nil {
			return nil, fmt.Errorf(ErrFmtItemAtIndex, i, err)
		}
	}

	reg := b.Seal()
	slog.Default().Info(LogMsgRegistryBuilt, "items", reg.Len(), "version", config.Version)

	return reg, nil
}
