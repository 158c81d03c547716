package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/colorpref/config.schema.json"

// JSONSchema returns the JSON schema of config.toml, for editor completion.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "colorpref configuration"
	schema.Description = "Configuration schema for colorpref, the light/dark theme preference tool"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
