package lexconfigs

import (
	"path/filepath"

	"github.com/reusee/tumfl/cmds"
	"github.com/reusee/tumfl/configs"
)

// Exclude reports whether a path should be skipped.
type Exclude func(path string) bool

var excludeFlag = cmds.Collect[string]("-exclude", "skip files matching the glob pattern")

func (Module) Exclude(
	loader configs.Loader,
) Exclude {
	patterns := append([]string(nil), *excludeFlag...)
	for list := range configs.All[[]string](loader, "exclude") {
		patterns = append(patterns, list...)
	}
	return func(path string) bool {
		for _, pattern := range patterns {
			if ok, _ := filepath.Match(pattern, path); ok {
				return true
			}
			if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
				return true
			}
		}
		return false
	}
}
