// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru-code/m2settings/internal/infra/envsource"
	"github.com/poruru-code/m2settings/internal/infra/ui"
	"github.com/poruru-code/m2settings/internal/meta"
	"github.com/poruru-code/m2settings/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	Out    io.Writer
	ErrOut io.Writer
	// WorkDir is the directory the process was started in. Relative paths
	// from flags resolve against it.
	WorkDir string
	Env     envsource.View
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config    string      `short:"c" name:"config" help:"Path to YAML config file"`
	LogLevel  string      `name:"log-level" help:"Log level (discard/error/info/debug/trace)"`
	LogFormat string      `name:"log-format" help:"Log format (console/json)"`
	Emoji     bool        `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji   bool        `name:"no-emoji" help:"Disable emoji output"`
	Generate  GenerateCmd `cmd:"" default:"withargs" help:"Write settings.xml with repository credentials (default)"`
	Version   VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	// GenerateCmd defines the generate command flags.
	GenerateCmd struct {
		OutputDir        string `short:"o" name:"output-dir" help:"Directory receiving settings.xml (default: working directory)"`
		EnvFile          string `name:"env-file" help:"Dotenv file filling variables missing from the environment"`
		RequireSecureEnv bool   `name:"require-secure-env" help:"Skip generation when TRAVIS_SECURE_ENV_VARS is false"`
	}

	VersionCmd struct{}
)

// Run parses args, dispatches to the selected command and returns the
// process exit code: 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Env == nil {
		deps.Env = envsource.OS()
	}

	cli := CLI{}
	parser, err := kong.New(
		&cli,
		kong.Name(meta.AppName),
		kong.Description("Generate a settings.xml holding repository credentials from the environment."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(streamsFor(deps, CLI{}), err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}

	emojiEnabled, err := resolveEmojiEnabled(deps.ErrOut, cli, deps.Env)
	if err != nil {
		return exitWithError(ui.NewStreams(deps.Out, deps.ErrOut, false), err)
	}
	output := ui.NewStreams(deps.Out, deps.ErrOut, emojiEnabled)

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, output); handled {
		return exitCode
	}

	output.Error("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, ui.UserInterface) int

func dispatchCommand(command string, cli CLI, deps Dependencies, output ui.UserInterface) (int, bool) {
	handlers := map[string]commandHandler{
		"generate": runGenerate,
		"version":  runVersion,
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, output), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, _ Dependencies, output ui.UserInterface) int {
	output.Info(version.String())
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, deps Dependencies) int {
	output := streamsFor(deps, CLI{})
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		switch {
		case strings.Contains(msg, "--output-dir"):
			output.Warn("`-o/--output-dir` expects a directory. Omit the flag to write into the working directory.")
			output.Warn(fmt.Sprintf("Example: %s --output-dir ./ci", meta.AppName))
			return 1
		case strings.Contains(msg, "--env-file"):
			output.Warn("`--env-file` expects a file path.")
			output.Warn(fmt.Sprintf("Example: %s --env-file .env.ci", meta.AppName))
			return 1
		case strings.Contains(msg, "--config"):
			output.Warn("`-c/--config` expects a YAML file path.")
			output.Warn(fmt.Sprintf("Example: %s --config m2settings.yaml", meta.AppName))
			return 1
		}
	}
	return exitWithError(output, err)
}

func streamsFor(deps Dependencies, cli CLI) ui.UserInterface {
	emojiEnabled, err := resolveEmojiEnabled(deps.ErrOut, cli, deps.Env)
	if err != nil {
		emojiEnabled = false
	}
	return ui.NewStreams(deps.Out, deps.ErrOut, emojiEnabled)
}
