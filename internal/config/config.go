// Package config provides configuration loading for latex-cli.
//
// Configuration is read from a TOML file, overlaid with LATEXCLI_*
// environment variables. A missing configuration file is not an error;
// defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Configuration errors.
var (
	// ErrInvalidDPI indicates a non-positive preview DPI.
	ErrInvalidDPI = errors.New("preview dpi must be positive")

	// ErrEmptySentinel indicates an empty compile sentinel token.
	ErrEmptySentinel = errors.New("repl sentinel must not be empty")

	// ErrUnknownRenderer indicates an unrecognized renderer backend name.
	ErrUnknownRenderer = errors.New("unknown renderer backend")
)

// Duration wraps time.Duration so it can be written as "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(b), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// CompilerConfig configures the external LaTeX compiler.
type CompilerConfig struct {
	// Command is the compiler binary to invoke.
	Command string `toml:"command"`

	// Timeout bounds a single compile run. Zero means no timeout.
	Timeout Duration `toml:"timeout"`
}

// PreviewConfig configures rasterization and the preview window.
type PreviewConfig struct {
	// DPI is the rasterization resolution for the first page.
	DPI int `toml:"dpi"`

	// Margin is the white border around the bitmap, in pixels.
	Margin int `toml:"margin"`

	// Renderer selects the rasterization backend: "fitz" or "poppler".
	Renderer string `toml:"renderer"`
}

// REPLConfig configures the interactive prompt.
type REPLConfig struct {
	// Sentinel is the line that triggers compilation.
	Sentinel string `toml:"sentinel"`

	// Prompt is printed before the first line of a snippet.
	Prompt string `toml:"prompt"`

	// Continuation is printed before subsequent lines.
	Continuation string `toml:"continuation"`
}

// DocumentConfig configures the generated LaTeX document.
type DocumentConfig struct {
	// Packages are \usepackage entries added to the preamble.
	Packages []string `toml:"packages"`
}

// WorkspaceConfig configures the scratch directory.
type WorkspaceConfig struct {
	// Dir pins the scratch directory to a fixed path.
	// Empty means a per-process temporary directory.
	Dir string `toml:"dir"`
}

// LoggingConfig configures diagnostics output.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `toml:"level"`
}

// Config is the root configuration for latex-cli.
type Config struct {
	Compiler  CompilerConfig  `toml:"compiler"`
	Preview   PreviewConfig   `toml:"preview"`
	REPL      REPLConfig      `toml:"repl"`
	Document  DocumentConfig  `toml:"document"`
	Workspace WorkspaceConfig `toml:"workspace"`
	Logging   LoggingConfig   `toml:"logging"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Compiler: CompilerConfig{
			Command: "pdflatex",
			Timeout: Duration{30 * time.Second},
		},
		Preview: PreviewConfig{
			DPI:      200,
			Margin:   10,
			Renderer: "fitz",
		},
		REPL: REPLConfig{
			Sentinel:     ":c",
			Prompt:       ">>> ",
			Continuation: "... ",
		},
		Document: DocumentConfig{
			Packages: []string{"amsmath", "amssymb", "graphicx", "xcolor"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "latex-cli.toml"
	}
	return filepath.Join(dir, "latex-cli", "config.toml")
}

// Load reads configuration from path, falling back to defaults for any
// value the file does not set. A missing file is not an error.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays LATEXCLI_* environment variables onto the config.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("LATEXCLI_COMPILER"); ok {
		c.Compiler.Command = v
	}
	if v, ok := os.LookupEnv("LATEXCLI_TIMEOUT"); ok {
		if err := c.Compiler.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("LATEXCLI_TIMEOUT: %w", err)
		}
	}
	if v, ok := os.LookupEnv("LATEXCLI_DPI"); ok {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LATEXCLI_DPI: parse %q: %w", v, err)
		}
		c.Preview.DPI = dpi
	}
	if v, ok := os.LookupEnv("LATEXCLI_RENDERER"); ok {
		c.Preview.Renderer = v
	}
	if v, ok := os.LookupEnv("LATEXCLI_SENTINEL"); ok {
		c.REPL.Sentinel = v
	}
	if v, ok := os.LookupEnv("LATEXCLI_SCRATCH_DIR"); ok {
		c.Workspace.Dir = v
	}
	if v, ok := os.LookupEnv("LATEXCLI_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Preview.DPI <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDPI, c.Preview.DPI)
	}
	if c.REPL.Sentinel == "" {
		return ErrEmptySentinel
	}
	switch c.Preview.Renderer {
	case "fitz", "poppler":
		// Valid.
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Preview.Renderer)
	}
	return nil
}
