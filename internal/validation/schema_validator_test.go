package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enderryno/nuclearcraft-items/configs"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {
			"type": "string"
		},
		"age": {
			"type": "integer",
			"minimum": 0
		}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(fstest.MapFS{
		"test.schema.json": {Data: []byte(testSchema)},
	})

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid data",
			data: `{"name": "John", "age": 30}`,
		},
		{
			name: "valid data without optional field",
			data: `{"name": "Jane"}`,
		},
		{
			name:      "missing required field",
			data:      `{"age": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"name": "John", "age": "thirty"}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "constraint violation",
			data:      `{"name": "John", "age": -5}`,
			wantError: true,
			errorMsg:  "age",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": "John", "age": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "test.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator(fstest.MapFS{
		"test.schema.json": {Data: []byte(testSchema)},
	})

	dataPath := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"name": "Jane"}`), 0o644))

	assert.NoError(t, v.ValidateFile(dataPath, "test.schema.json"))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "test.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator(fstest.MapFS{})

	err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_ItemsSchema(t *testing.T) {
	v := NewSchemaValidator(configs.FS)

	seed, err := configs.FS.ReadFile(configs.ItemsPath)
	require.NoError(t, err)
	assert.NoError(t, v.ValidateBytes(seed, configs.ItemsSchemaPath))

	largest := `{"version": "1.0", "items": [{"id": 9223372036854775807, "display_name": "Geiger Counter"}]}`
	assert.NoError(t, v.ValidateBytes([]byte(largest), configs.ItemsSchemaPath))

	tests := []struct {
		name string
		data string
	}{
		{"no items", `{"version": "1.0", "items": []}`},
		{"zero id", `{"version": "1.0", "items": [{"id": 0, "display_name": "Gas Mask"}]}`},
		{"id past int64", `{"version": "1.0", "items": [{"id": 9223372036854775808, "display_name": "Gas Mask"}]}`},
		{"empty name", `{"version": "1.0", "items": [{"id": 1, "display_name": ""}]}`},
		{"unknown field", `{"version": "1.0", "items": [{"id": 1, "display_name": "Gas Mask", "weight": 3}]}`},
		{"bad version", `{"version": "one", "items": [{"id": 1, "display_name": "Gas Mask"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), configs.ItemsSchemaPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}
