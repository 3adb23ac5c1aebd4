// Where: internal/usecase/generate/credentials.go
// What: Bind repository credentials from an environment view.
// Why: Keep variable names declared once, on the struct that receives them.
package generate

import (
	"context"
	"fmt"

	"github.com/poruru-code/m2settings/internal/constants"
	"github.com/poruru-code/m2settings/internal/infra/envsource"
	"github.com/sethvargo/go-envconfig"
)

// Credentials holds the repository login read from the environment.
type Credentials struct {
	Username string `env:"SONATYPE_USERNAME"`
	Password string `env:"SONATYPE_PASSWORD"`
}

// requiredCredentialVars are checked for presence before binding. An empty
// value counts as present.
var requiredCredentialVars = []string{
	constants.EnvSonatypeUsername,
	constants.EnvSonatypePassword,
}

// LoadCredentials reads the credential variables from view.
func LoadCredentials(ctx context.Context, view envsource.View) (Credentials, error) {
	if view == nil {
		return Credentials{}, errEnvironmentNotConfigured
	}
	for _, name := range requiredCredentialVars {
		if _, ok := view.Lookup(name); !ok {
			return Credentials{}, &MissingEnvironmentVariableError{Name: name}
		}
	}

	var creds Credentials
	if err := envconfig.ProcessWith(ctx, &creds, view); err != nil {
		return Credentials{}, fmt.Errorf("bind credentials: %w", err)
	}
	return creds, nil
}

// secureEnvUnavailable reports whether CI marked secure variables as withheld,
// as happens on builds of forks and pull requests.
func secureEnvUnavailable(view envsource.View) bool {
	value, ok := view.Lookup(constants.EnvTravisSecureEnvVars)
	return ok && value == "false"
}
