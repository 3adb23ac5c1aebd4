// Where: internal/infra/envsource/view.go
// What: Read-only environment views for credential lookups.
// Why: Inject environment access instead of reading the process env ad hoc.
package envsource

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// View is a read-only mapping from variable name to value. The boolean
// reports presence; a present variable may hold an empty string.
//
// Any View satisfies envconfig.Lookuper.
type View interface {
	Lookup(key string) (string, bool)
}

// OS returns a View over the process environment.
func OS() View {
	return envconfig.OsLookuper()
}

// Map returns a View over a fixed set of values.
func Map(values map[string]string) View {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return envconfig.MapLookuper(copied)
}

// Layered returns a View that answers from the first view holding the key.
func Layered(views ...View) View {
	lookupers := make([]envconfig.Lookuper, 0, len(views))
	for _, view := range views {
		if view == nil {
			continue
		}
		lookupers = append(lookupers, view)
	}
	return envconfig.MultiLookuper(lookupers...)
}

// ReadDotenv parses a dotenv file into a View without touching the process
// environment.
func ReadDotenv(path string) (View, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("env file path is required")
	}
	values, err := godotenv.Read(trimmed)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", trimmed, err)
	}
	return Map(values), nil
}

// Value returns the value for key, or fallback when the key is absent.
func Value(view View, key, fallback string) string {
	if view == nil {
		return fallback
	}
	if value, ok := view.Lookup(key); ok {
		return value
	}
	return fallback
}
