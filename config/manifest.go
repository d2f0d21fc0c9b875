package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/buger/jsonparser"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/logging"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ManifestFileName is the project manifest hooks are read from.
const ManifestFileName = "composer.json"

var logger = logging.NewLogger("config")

// Manifest holds the raw bytes of a project manifest. Every lookup parses
// the bytes again; nothing is cached.
type Manifest struct {
	Path string
	data []byte
}

// ManifestPath returns the manifest location for a project directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFileName)
}

// ReadManifest reads the manifest in dir. It returns (nil, nil) when the
// file does not exist and a MANIFEST_INVALID error when it is not valid JSON.
func ReadManifest(dir string) (*Manifest, error) {
	path := ManifestPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.ManifestInvalid(path, err)
	}

	return &Manifest{Path: path, data: data}, nil
}

// LoadManifest is the lenient form of ReadManifest: an unreadable or
// malformed manifest is reported as absent.
func LoadManifest(dir string) (*Manifest, bool) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		logger.WithError(err).WithField("dir", dir).Warn("Ignoring unusable manifest")
		return nil, false
	}
	if manifest == nil {
		logger.WithField("path", ManifestPath(dir)).Debug("No manifest found")
		return nil, false
	}
	return manifest, true
}

// Bytes returns the raw manifest contents.
func (m *Manifest) Bytes() []byte {
	return m.data
}

// Lookup returns the decoded value at the given key path. Missing keys and
// JSON null both report false.
func (m *Manifest) Lookup(keys ...string) (interface{}, bool) {
	value, dataType, _, err := jsonparser.Get(m.data, keys...)
	if err != nil {
		return nil, false
	}

	switch dataType {
	case jsonparser.NotExist, jsonparser.Null:
		return nil, false
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, false
		}
		return s, true
	}

	var decoded interface{}
	if err := json.Unmarshal(value, &decoded); err != nil {
		return nil, false
	}
	return decoded, true
}

// Object returns the object at the given key path with its keys in
// document order. Anything other than an object yields an empty map.
func (m *Manifest) Object(keys ...string) *orderedmap.OrderedMap[string, json.RawMessage] {
	object := orderedmap.New[string, json.RawMessage]()

	value, dataType, _, err := jsonparser.Get(m.data, keys...)
	if err != nil || dataType != jsonparser.Object {
		return object
	}

	if err := json.Unmarshal(value, object); err != nil {
		logger.WithError(err).WithField("keys", keys).Debug("Failed to decode manifest object")
		return orderedmap.New[string, json.RawMessage]()
	}
	return object
}
