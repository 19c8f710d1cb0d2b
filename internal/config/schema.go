package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing seyuna.json, tagged with the tool version.
func Schema(version string) ([]byte, error) {
	// Unknown keys such as $schema are ignored by the loader, so the schema allows them.
	r := &jsonschema.Reflector{AllowAdditionalProperties: true}
	s := r.Reflect(&Config{})
	s.Title = "Seyuna configuration"
	s.Description = fmt.Sprintf("seyuna.json schema for seyuna %s", version)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return append(data, '\n'), nil
}

// SchemaFileName is the versioned file name the schema is exported under.
func SchemaFileName(version string) string {
	return "v-" + version + ".schema.json"
}

// JSONSchema describes Hues as an object of numbers; the reflector would otherwise see a slice.
func (Hues) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Named hues in degrees, emitted as custom properties in this order.",
		AdditionalProperties: &jsonschema.Schema{Type: "number"},
	}
}

// JSONSchema restricts Mode to its three values.
func (Mode) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: []any{string(ModeSystem), string(ModeLight), string(ModeDark)},
	}
}

// JSONSchemaExtend replaces the reflected viewport map, whose keys are integers in Go
// but breakpoint names in JSON.
func (Breakpoints) JSONSchemaExtend(s *jsonschema.Schema) {
	names := make([]any, len(AllBreakpoints))
	for i, b := range AllBreakpoints {
		names[i] = b.String()
	}
	s.Properties.Set("viewport", &jsonschema.Schema{
		Type:                 "object",
		PropertyNames:        &jsonschema.Schema{Enum: names},
		AdditionalProperties: &jsonschema.Schema{Type: "number", ExclusiveMinimum: json.Number("0")},
	})
}
