package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ManifestFileName mirrors config.ManifestFileName without importing it,
// so config's own tests can use these helpers.
const ManifestFileName = "composer.json"

// WriteManifest marshals manifest as JSON into dir and returns the file path.
// Strings and byte slices are written verbatim.
func WriteManifest(t *testing.T, dir string, manifest interface{}) string {
	t.Helper()

	var data []byte
	switch m := manifest.(type) {
	case string:
		data = []byte(m)
	case []byte:
		data = m
	default:
		var err error
		data, err = json.MarshalIndent(m, "", "    ")
		require.NoError(t, err, "marshal manifest")
	}

	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, data, 0600), "write manifest")
	return path
}

// ProjectDir creates a temp directory holding the given manifest.
func ProjectDir(t *testing.T, manifest interface{}) string {
	t.Helper()

	dir := t.TempDir()
	WriteManifest(t, dir, manifest)
	return dir
}
