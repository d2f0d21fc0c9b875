package config

import (
	"fmt"
	"slices"

	"github.com/grovetools/hooks/errors"
	"github.com/mitchellh/mapstructure"
)

// CommandsSection lists hooks whose commands must all succeed in sequence.
const CommandsSection = "commands"

// ReservedSections cannot be read through GetConfig or UnmarshalSection.
// "command" belongs to per-command settings kept apart from hook settings.
var ReservedSections = []string{"command"}

// SectionPath returns the manifest key path of a config section.
func SectionPath(section string) []string {
	return []string{"extra", "hooks", "config", section}
}

func checkSection(section string) error {
	if slices.Contains(ReservedSections, section) {
		return errors.InvalidConfigSection(section, ReservedSections)
	}
	return nil
}

// GetConfig returns the value stored at extra.hooks.config.<section> in the
// manifest in dir. The value is returned as decoded, whatever its JSON type.
// A missing manifest or section yields an empty map.
func GetConfig(dir, section string) (interface{}, error) {
	if err := checkSection(section); err != nil {
		return nil, err
	}

	value, ok := lookupSection(dir, section)
	if !ok {
		return map[string]interface{}{}, nil
	}
	return value, nil
}

// UnmarshalSection decodes a config section into target, which must be a
// pointer. An absent section leaves target untouched.
//
// Example:
//
//	var commands []string
//	err := config.UnmarshalSection(dir, config.CommandsSection, &commands)
func UnmarshalSection(dir, section string, target interface{}) error {
	if err := checkSection(section); err != nil {
		return err
	}

	value, ok := lookupSection(dir, section)
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(value); err != nil {
		return fmt.Errorf("failed to decode config section '%s': %w", section, err)
	}
	return nil
}

func lookupSection(dir, section string) (interface{}, bool) {
	manifest, ok := LoadManifest(dir)
	if !ok {
		return nil, false
	}
	return manifest.Lookup(SectionPath(section)...)
}
