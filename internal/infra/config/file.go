// Where: internal/infra/config/file.go
// What: Optional YAML configuration file for the generator.
// Why: Let CI pipelines pin output location and logging without long flag lists.
package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

const (
	CurrentVersion = 1

	schemaPath = "schema/config.schema.json"
	schemaURL  = "config.schema.json"
)

//go:embed schema/config.schema.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// FileConfig mirrors the keys accepted in the YAML configuration file.
type FileConfig struct {
	Version          int    `yaml:"version"`
	OutputDir        string `yaml:"output_dir,omitempty"`
	EnvFile          string `yaml:"env_file,omitempty"`
	RequireSecureEnv bool   `yaml:"require_secure_env,omitempty"`
	LogLevel         string `yaml:"log_level,omitempty"`
	LogFormat        string `yaml:"log_format,omitempty"`
}

// DefaultFileConfig returns an empty configuration at the current version.
func DefaultFileConfig() FileConfig {
	return FileConfig{Version: CurrentVersion}
}

// LoadFile reads, validates and decodes the configuration at path. Relative
// output_dir and env_file values are resolved against the file's directory.
func LoadFile(path string) (FileConfig, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return FileConfig{}, fmt.Errorf("config path is required")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return FileConfig{}, fmt.Errorf("resolve config path: %w", err)
	}
	payload, err := os.ReadFile(abs)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(payload)
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", abs, err)
	}
	baseDir := filepath.Dir(abs)
	cfg.OutputDir = resolveRelative(baseDir, cfg.OutputDir)
	cfg.EnvFile = resolveRelative(baseDir, cfg.EnvFile)
	return cfg, nil
}

// Parse validates payload against the embedded schema and decodes it.
func Parse(payload []byte) (FileConfig, error) {
	if err := validate(payload); err != nil {
		return FileConfig{}, err
	}

	cfg := DefaultFileConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(payload))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func validate(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load config schema: %w", err)
	}

	jsonData, err := k8syaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile(schemaPath)
		if err != nil {
			schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

func resolveRelative(baseDir, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Join(baseDir, trimmed)
}
