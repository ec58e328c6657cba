package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// Schema returns the JSON Schema of config.toml, keyed by the TOML names.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true, // every key has a default
	}
	s := r.Reflect(&Config{})
	s.ID = "https://github.com/bnema/toolip/config.schema.json"
	s.Title = "toolip configuration"
	return s
}

// GenerateSchemaFile writes config.schema.json into dir.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	path := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
