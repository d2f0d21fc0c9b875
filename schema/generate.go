package schema

import (
	"encoding/json"

	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/git"
	"github.com/invopop/jsonschema"
)

// GenerateSchema builds the JSON Schema for the hook-related parts of a
// manifest. Keys that are not git hooks are left unconstrained, so a
// manifest's other scripts and extra settings still validate.
func GenerateSchema() ([]byte, error) {
	extra := jsonschema.NewProperties()
	extra.Set("hooks", hookTable(true))

	properties := jsonschema.NewProperties()
	properties.Set("scripts", hookTable(false))
	properties.Set("hooks", hookTable(false))
	properties.Set("extra", &jsonschema.Schema{
		Type:       "object",
		Properties: extra,
	})

	schema := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Git hooks manifest",
		Description: "Hook definitions and hook settings read from " + config.ManifestFileName + ".",
		Type:        "object",
		Properties:  properties,
	}

	return json.MarshalIndent(schema, "", "  ")
}

func hookTable(withSettings bool) *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	for _, name := range git.HookNames {
		properties.Set(name, hookDefinition())
	}
	if withSettings {
		properties.Set("config", settings())
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
	}
}

func hookDefinition() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "A single command, or a list of commands",
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}

func settings() *jsonschema.Schema {
	names := make([]interface{}, 0, len(git.HookNames))
	for _, name := range git.HookNames {
		names = append(names, name)
	}

	properties := jsonschema.NewProperties()
	properties.Set(config.CommandsSection, &jsonschema.Schema{
		Description: "Hooks whose commands must all succeed in sequence",
		Type:        "array",
		Items:       &jsonschema.Schema{Type: "string", Enum: names},
	})

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
	}
}
