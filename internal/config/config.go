package config

import "os"

const DefaultProjectPath = "~/Documents/treecreator/project.json"

// ProjectPath returns the project file path from TREECREATOR_PROJECT env var,
// falling back to DefaultProjectPath.
func ProjectPath() string {
	if env := os.Getenv("TREECREATOR_PROJECT"); env != "" {
		return env
	}
	return DefaultProjectPath
}
