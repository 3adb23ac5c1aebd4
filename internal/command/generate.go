// Where: internal/command/generate.go
// What: Generate command adapter.
// Why: Merge flags, config file and environment into a generation request.
package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru-code/m2settings/internal/constants"
	"github.com/poruru-code/m2settings/internal/infra/config"
	"github.com/poruru-code/m2settings/internal/infra/envsource"
	"github.com/poruru-code/m2settings/internal/infra/logging"
	"github.com/poruru-code/m2settings/internal/infra/ui"
	"github.com/poruru-code/m2settings/internal/usecase/generate"
)

// runGenerate executes the 'generate' command, which is also the default.
func runGenerate(cli CLI, deps Dependencies, output ui.UserInterface) int {
	fileCfg := config.DefaultFileConfig()
	if path := strings.TrimSpace(cli.Config); path != "" {
		loaded, err := config.LoadFile(resolvePath(deps.WorkDir, path))
		if err != nil {
			return exitWithError(output, err)
		}
		fileCfg = loaded
	}

	env := deps.Env
	if envFile := firstNonEmpty(resolvePath(deps.WorkDir, cli.Generate.EnvFile), fileCfg.EnvFile); envFile != "" {
		dotenv, err := envsource.ReadDotenv(envFile)
		if err != nil {
			return exitWithError(output, err)
		}
		env = envsource.Layered(deps.Env, dotenv)
	}

	logger, err := newLogger(cli, fileCfg, deps, env, output)
	if err != nil {
		return exitWithError(output, err)
	}
	defer func() { _ = logger.Sync() }()

	req := generate.Request{
		Env:              env,
		Dir:              firstNonEmpty(resolvePath(deps.WorkDir, cli.Generate.OutputDir), fileCfg.OutputDir, deps.WorkDir),
		RequireSecureEnv: cli.Generate.RequireSecureEnv || fileCfg.RequireSecureEnv,
	}
	if _, err := generate.New(output, logger).Generate(context.Background(), req); err != nil {
		return exitWithError(output, err)
	}
	return 0
}

// newLogger resolves level and format from flags, then the config file, then
// the environment. Only environment values are allowed to be wrong: they are
// often set for other tools, so an unknown value falls back to the default.
func newLogger(cli CLI, fileCfg config.FileConfig, deps Dependencies, env envsource.View, output ui.UserInterface) (*logging.Logger, error) {
	level, err := resolveLogSetting(
		firstNonEmpty(cli.LogLevel, fileCfg.LogLevel),
		env, constants.EnvLogLevel,
		logging.ParseLevel, logging.DefaultLevel, output,
	)
	if err != nil {
		return nil, err
	}
	format, err := resolveLogSetting(
		firstNonEmpty(cli.LogFormat, fileCfg.LogFormat),
		env, constants.EnvLogFormat,
		logging.ParseFormat, logging.DefaultFormat, output,
	)
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewLogger(deps.ErrOut, level, format)
	if err != nil {
		return nil, err
	}
	return logger.WithValues("command", "generate"), nil
}

func resolveLogSetting[T any](
	explicit string,
	env envsource.View,
	envName string,
	parse func(string) (T, error),
	fallback T,
	output ui.UserInterface,
) (T, error) {
	if explicit != "" {
		return parse(explicit)
	}
	value, err := parse(envsource.Value(env, envName, ""))
	if err != nil {
		output.Warn(fmt.Sprintf("ignoring %s: %v", envName, err))
		return fallback, nil
	}
	return value, nil
}

func resolvePath(base, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || filepath.IsAbs(trimmed) || base == "" {
		return trimmed
	}
	return filepath.Join(base, trimmed)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
