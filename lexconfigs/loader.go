package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tumfl/configs"
	"github.com/reusee/tumfl/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"tumfl.cue",
	".tumfl.cue",
}

// ConfigDirs lists the directories searched for config files, most
// specific first.
type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
