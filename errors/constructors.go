package errors

import (
	"fmt"
	"strings"
)

// InvalidConfigSection creates an error for a config section that cannot be queried
func InvalidConfigSection(section string, reserved []string) *HooksError {
	return New(ErrCodeInvalidConfigSection,
		fmt.Sprintf("invalid config section [%s]. Reserved sections: %s.", section, strings.Join(reserved, ", "))).
		WithDetail("section", section)
}

// ManifestInvalid creates an error for a manifest that is not valid JSON
func ManifestInvalid(path string, err error) *HooksError {
	return Wrap(err, ErrCodeManifestInvalid, fmt.Sprintf("manifest is not valid JSON: %s", path)).
		WithDetail("path", path)
}

// ConfigValidation creates a schema validation failure error
func ConfigValidation(path string, err error) *HooksError {
	return Wrap(err, ErrCodeConfigValidation, fmt.Sprintf("manifest hook configuration is invalid: %s", path)).
		WithDetail("path", path)
}
