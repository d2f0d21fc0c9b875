// Package hooks reads git hook definitions from a project manifest and
// renders them into hook scripts.
//
// Definitions are merged from three manifest locations, later ones winning:
//
//	{
//	    "scripts": {"pre-commit": "vendor/bin/phpcs"},
//	    "hooks":   {"pre-commit": "vendor/bin/php-cs-fixer fix --dry-run"},
//	    "extra": {
//	        "hooks": {
//	            "pre-push": ["composer test", "composer lint"],
//	            "config": {"commands": ["pre-push"]}
//	        }
//	    }
//	}
//
// Hooks listed under extra.hooks.config.commands are rendered as an
// && chain so the first failing command stops the hook.
package hooks

import (
	"encoding/json"
	"strings"

	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/git"
	"github.com/grovetools/hooks/logging"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// LineSeparator joins commands that run as independent script lines.
	LineSeparator = "\n"
	// SequenceSeparator joins commands that must all succeed.
	SequenceSeparator = " && \\\n"
)

// Sources are the manifest key paths hook definitions are read from, in
// merge order.
var Sources = [][]string{
	{"scripts"},
	{"hooks"},
	{"extra", "hooks"},
}

var logger = logging.NewLogger("hooks")

// IsValidHook reports whether hook is one of the recognized git hooks.
func IsValidHook(hook string) bool {
	return git.IsValidHook(hook)
}

// IsHookWithCommandsSequence reports whether hook is listed in the
// commands config section. A section that is not a list counts as empty.
func IsHookWithCommandsSequence(dir, hook string) bool {
	var sequenced []interface{}
	if err := config.UnmarshalSection(dir, config.CommandsSection, &sequenced); err != nil {
		logger.WithError(err).WithField("dir", dir).Debug("Ignoring commands section")
		return false
	}

	for _, name := range sequenced {
		if s, ok := name.(string); ok && s == hook {
			return true
		}
	}
	return false
}

// MergeSources merges hook sources in order. A key seen again takes the
// later value but keeps the position where it first appeared.
func MergeSources(sources ...*orderedmap.OrderedMap[string, json.RawMessage]) *orderedmap.OrderedMap[string, json.RawMessage] {
	merged := orderedmap.New[string, json.RawMessage]()
	for _, source := range sources {
		if source == nil {
			continue
		}
		for pair := source.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	return merged
}

// GetValidHooks returns the hook definitions of the manifest in dir that
// name a recognized git hook, in merge order. Contents are kept as written.
func GetValidHooks(dir string) *orderedmap.OrderedMap[string, Contents] {
	valid := orderedmap.New[string, Contents]()

	manifest, ok := config.LoadManifest(dir)
	if !ok {
		return valid
	}

	sources := make([]*orderedmap.OrderedMap[string, json.RawMessage], 0, len(Sources))
	for _, path := range Sources {
		sources = append(sources, manifest.Object(path...))
	}

	merged := MergeSources(sources...)
	for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
		if !IsValidHook(pair.Key) {
			continue
		}

		var contents Contents
		if err := json.Unmarshal(pair.Value, &contents); err != nil {
			logger.WithError(err).WithField("hook", pair.Key).Warn("Skipping unreadable hook definition")
			continue
		}
		valid.Set(pair.Key, contents)
	}

	logger.WithField("count", valid.Len()).WithField("path", manifest.Path).Debug("Loaded hook definitions")
	return valid
}

// GetHookContents renders contents into the body of a hook script.
// Sequences are joined with SequenceSeparator when hook is listed in the
// commands section and with LineSeparator otherwise. Scripts are returned
// unchanged.
func GetHookContents(dir string, contents Contents, hook string) string {
	switch contents.Kind() {
	case KindSequence:
		separator := LineSeparator
		if IsHookWithCommandsSequence(dir, hook) {
			separator = SequenceSeparator
		}
		return strings.Join(contents.commands, separator)
	case KindOther:
		return string(contents.raw)
	default:
		return contents.script
	}
}

// RenderAll renders every valid hook of the manifest in dir, keyed by hook
// name in merge order.
func RenderAll(dir string) *orderedmap.OrderedMap[string, string] {
	rendered := orderedmap.New[string, string]()
	for pair := GetValidHooks(dir).Oldest(); pair != nil; pair = pair.Next() {
		rendered.Set(pair.Key, GetHookContents(dir, pair.Value, pair.Key))
	}
	return rendered
}
