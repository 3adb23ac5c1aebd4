// Where: internal/usecase/generate/generate.go
// What: Settings file generation workflow.
// Why: Encapsulate the read-build-write pass without CLI concerns.
package generate

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/poruru-code/m2settings/internal/domain/settings"
	"github.com/poruru-code/m2settings/internal/infra/envsource"
	"github.com/poruru-code/m2settings/internal/infra/fileops"
	"github.com/poruru-code/m2settings/internal/infra/logging"
	"github.com/poruru-code/m2settings/internal/infra/ui"
	"github.com/poruru-code/m2settings/internal/meta"
)

const skipMessage = "no secure env vars available, skipping settings generation"

// Request captures the inputs required to generate a settings file.
type Request struct {
	Env envsource.View
	// Dir is the directory receiving settings.xml.
	Dir string
	// RequireSecureEnv skips generation when CI reports secure variables
	// as unavailable.
	RequireSecureEnv bool
}

// Result describes a completed run.
type Result struct {
	Path    string
	Bytes   int
	Skipped bool
}

// FileWriter replaces the file at path with data.
type FileWriter func(path string, data []byte, perm fs.FileMode) error

// Generator writes the repository credentials settings file.
type Generator struct {
	ui     ui.UserInterface
	logger *logging.Logger
	write  FileWriter
}

// Option customizes a Generator.
type Option func(*Generator)

// WithFileWriter replaces the atomic file writer.
func WithFileWriter(write FileWriter) Option {
	return func(g *Generator) {
		if write != nil {
			g.write = write
		}
	}
}

// New returns a Generator reporting the output directory through ui.
func New(ui ui.UserInterface, logger *logging.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	g := &Generator{
		ui:     ui,
		logger: logger,
		write:  fileops.WriteFileAtomic,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the settings document in memory and writes it to
// <Dir>/settings.xml. Nothing on disk changes unless every input is valid.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if req.Env == nil {
		return Result{}, errEnvironmentNotConfigured
	}
	if req.RequireSecureEnv && secureEnvUnavailable(req.Env) {
		g.ui.Warn(skipMessage)
		g.logger.Info("settings generation skipped", "gate", "require_secure_env")
		return Result{Skipped: true}, nil
	}

	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		return Result{}, errOutputDirRequired
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	g.ui.Info(dir)

	creds, err := LoadCredentials(ctx, req.Env)
	if err != nil {
		return Result{}, err
	}
	g.logger.Trace("credentials resolved from environment", "variables", requiredCredentialVars)

	doc := settings.NewDocument(creds.Username, creds.Password)
	payload, err := settings.Build(doc)
	if err != nil {
		return Result{}, err
	}
	g.logger.Debug("settings document built", "server_id", doc.ServerID, "bytes", len(payload))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	path := filepath.Join(dir, meta.SettingsFilename)
	replaced := fileops.FileExists(path)
	if err := g.write(path, payload, meta.SettingsFileMode); err != nil {
		g.logger.Error(err, "settings write failed", "path", path)
		return Result{}, &WriteFailureError{Path: path, Err: err}
	}
	g.logger.Info("settings file written", "path", path, "bytes", len(payload), "replaced", replaced)

	return Result{Path: path, Bytes: len(payload)}, nil
}
