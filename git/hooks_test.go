package git

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookNames(t *testing.T) {
	require.Len(t, HookNames, 18)
	assert.True(t, sort.StringsAreSorted(HookNames), "hook names should stay sorted")

	seen := make(map[string]bool)
	for _, name := range HookNames {
		assert.False(t, seen[name], "duplicate hook %s", name)
		seen[name] = true
	}
}

func TestIsValidHook(t *testing.T) {
	for _, name := range HookNames {
		assert.True(t, IsValidHook(name), name)
	}

	invalid := []string{
		"",
		"Pre-Commit",
		"PRE-COMMIT",
		"pre-commit-msg",
		"pre-commit ",
		" pre-commit",
		"precommit",
		"pre-merge-commit",
		"test",
		"config",
	}
	for _, name := range invalid {
		assert.False(t, IsValidHook(name), "%q should not be a valid hook", name)
	}
}

func TestHooksReturnsCopy(t *testing.T) {
	hooks := Hooks()
	hooks[0] = "mutated"
	assert.Equal(t, "applypatch-msg", HookNames[0])
}
