// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report which build produced a settings file when debugging CI runs.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/poruru-code/m2settings/internal/meta"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the module version for tagged installs, otherwise the
// short VCS revision with a "(dirty)" marker for modified trees, or "dev".
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}

// String returns the application name followed by its version.
func String() string {
	return meta.AppName + " " + GetVersion()
}
