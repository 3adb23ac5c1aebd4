// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Repository credentials
	EnvSonatypeUsername = "SONATYPE_USERNAME"
	EnvSonatypePassword = "SONATYPE_PASSWORD"

	// CI gate
	EnvTravisSecureEnvVars = "TRAVIS_SECURE_ENV_VARS"

	// Logging
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	// Console decoration
	EnvNoEmoji = "NO_EMOJI"
	EnvTerm    = "TERM"
)
