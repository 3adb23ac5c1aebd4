// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep binary naming and settings output layout in one place.
package meta

const (
	// Project Identity
	AppName = "m2settings"

	// Output Layout
	SettingsFilename = "settings.xml"
	SettingsFileMode = 0o600

	// Repository server entry
	ServerID = "sonatype-nexus-snapshots"
)
