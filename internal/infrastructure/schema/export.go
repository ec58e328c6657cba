// Package schema generates JSON Schemas from toolip's Go types.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/toolip/internal/domain/build"
	"github.com/bnema/toolip/internal/domain/entity"
)

// ExportSchema returns the JSON Schema of a settings export file.
func ExportSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&entity.ExportEnvelope{})

	s.ID = jsonschema.ID(build.RepoURL() + "/export.schema.json")
	s.Title = "toolip settings export"
	s.Description = "Site list exported from the toolip panel settings, version " + entity.ExportVersion
	return s
}

// ExportSchemaJSON renders ExportSchema as indented JSON.
func ExportSchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(ExportSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export schema: %w", err)
	}
	return data, nil
}
