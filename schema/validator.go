package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "hooks-manifest.json"

// Validator validates manifests against the generated hooks schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator generates and compiles the hooks schema.
func NewValidator() (*Validator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate validates a decoded JSON document against the schema.
func (v *Validator) Validate(document interface{}) error {
	if err := v.schema.Validate(document); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			var messages []string
			collectErrors(validationErr, &messages)
			if len(messages) == 0 {
				messages = append(messages, "- "+validationErr.Message)
			}
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(messages, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// ValidateManifest validates the manifest in dir. A missing manifest is
// valid. Malformed JSON yields MANIFEST_INVALID and schema violations
// yield CONFIG_VALIDATION.
func (v *Validator) ValidateManifest(dir string) error {
	manifest, err := config.ReadManifest(dir)
	if err != nil || manifest == nil {
		return err
	}

	var document interface{}
	if err := json.Unmarshal(manifest.Bytes(), &document); err != nil {
		return errors.ManifestInvalid(manifest.Path, err)
	}

	if err := v.Validate(document); err != nil {
		return errors.ConfigValidation(manifest.Path, err)
	}
	return nil
}

// ValidateManifest validates the manifest in dir with a fresh Validator.
func ValidateManifest(dir string) error {
	v, err := NewValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "hooks schema unavailable")
	}
	return v.ValidateManifest(dir)
}

// collectErrors recursively collects all validation errors into a slice
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" && len(err.Causes) == 0 {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
