// Where: cmd/m2settings/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/m2settings/internal/command"
	"github.com/poruru-code/m2settings/internal/infra/envsource"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the CLI.
// The working directory is captured once so every command sees the same value.
func buildDependencies() (command.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return command.Dependencies{}, err
	}

	return command.Dependencies{
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		WorkDir: workDir,
		Env:     envsource.OS(),
	}, nil
}
