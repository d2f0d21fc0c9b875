package git

import "slices"

// HookNames lists every git hook a manifest may define, in lexical order.
var HookNames = []string{
	"applypatch-msg",
	"commit-msg",
	"post-applypatch",
	"post-checkout",
	"post-commit",
	"post-merge",
	"post-receive",
	"post-rewrite",
	"post-update",
	"pre-applypatch",
	"pre-auto-gc",
	"pre-commit",
	"pre-push",
	"pre-rebase",
	"pre-receive",
	"prepare-commit-msg",
	"push-to-checkout",
	"update",
}

var hookSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(HookNames))
	for _, name := range HookNames {
		set[name] = struct{}{}
	}
	return set
}()

// IsValidHook reports whether name is a recognized git hook.
// Matching is exact and case-sensitive.
func IsValidHook(name string) bool {
	_, ok := hookSet[name]
	return ok
}

// Hooks returns a copy of HookNames.
func Hooks() []string {
	return slices.Clone(HookNames)
}
