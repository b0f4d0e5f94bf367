// Package configs embeds the seed item catalog and its JSON schema.
package configs

import "embed"

// Paths inside FS
const (
	ItemsPath       = "items/items.json"
	ItemsSchemaPath = "schemas/items.schema.json"
)

//go:embed items/items.json schemas/items.schema.json
var FS embed.FS
