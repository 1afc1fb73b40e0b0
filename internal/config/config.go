// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/switchkit/internal/logging"
	"github.com/jeranaias/switchkit/internal/switches"
	"github.com/jeranaias/switchkit/internal/util"
)

// CurrentVersion is written to new files.
const CurrentVersion = "1"

// File formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report formats for Output.Format.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is a switchkit configuration file.
type Config struct {
	Version  string        `toml:"version" json:"version" yaml:"version"`
	Output   OutputConfig  `toml:"output" json:"output" yaml:"output"`
	Logging  LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
	Help     HelpConfig    `toml:"help" json:"help" yaml:"help"`
	Switches []SwitchSpec  `toml:"switches" json:"switches" yaml:"switches"`
}

// OutputConfig controls how reports are printed.
type OutputConfig struct {
	Format    string `toml:"format" json:"format" yaml:"format"`          // text or json
	Color     bool   `toml:"color" json:"color" yaml:"color"`             // Styled output on a TTY
	Highlight string `toml:"highlight" json:"highlight" yaml:"highlight"` // chroma style for JSON, "" or "none" disables
}

// LoggingConfig controls the diagnostic logger on stderr.
type LoggingConfig struct {
	Level string `toml:"level" json:"level" yaml:"level"`
	JSON  bool   `toml:"json" json:"json" yaml:"json"`
}

// HelpConfig fills the help page header and picks the special switches.
type HelpConfig struct {
	ToolName        string `toml:"tool_name" json:"tool_name" yaml:"tool_name"`
	Description     string `toml:"description" json:"description" yaml:"description"`
	Copyright       string `toml:"copyright" json:"copyright" yaml:"copyright"`
	SettingsSwitch  string `toml:"settings_switch" json:"settings_switch" yaml:"settings_switch"`
	CopyrightSwitch string `toml:"copyright_switch" json:"copyright_switch" yaml:"copyright_switch"`
	HelpSwitch      string `toml:"help_switch" json:"help_switch" yaml:"help_switch"`
	Style           string `toml:"style" json:"style" yaml:"style"` // glamour style for --markdown
	Width           int    `toml:"width" json:"width" yaml:"width"`
}

// SwitchSpec is a switch definition. Max is a pointer so that an omitted
// maximum means unlimited while an explicit 0 means no arguments.
type SwitchSpec struct {
	Long     string      `toml:"long" json:"long" yaml:"long"`
	Short    string      `toml:"short,omitempty" json:"short,omitempty" yaml:"short,omitempty"`
	LongOnly bool        `toml:"long_only,omitempty" json:"long_only,omitempty" yaml:"long_only,omitempty"`
	Min      int         `toml:"min,omitempty" json:"min,omitempty" yaml:"min,omitempty"`
	Max      *int        `toml:"max,omitempty" json:"max,omitempty" yaml:"max,omitempty"`
	Argless  bool        `toml:"argless,omitempty" json:"argless,omitempty" yaml:"argless,omitempty"`
	Summary  string      `toml:"summary,omitempty" json:"summary,omitempty" yaml:"summary,omitempty"`
	Remarks  string      `toml:"remarks,omitempty" json:"remarks,omitempty" yaml:"remarks,omitempty"`
	Params   []ParamSpec `toml:"params,omitempty" json:"params,omitempty" yaml:"params,omitempty"`
}

// ParamSpec documents one switch parameter.
type ParamSpec struct {
	Name     string `toml:"name" json:"name" yaml:"name"`
	Type     string `toml:"type,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Variadic bool   `toml:"variadic,omitempty" json:"variadic,omitempty" yaml:"variadic,omitempty"`
}

// Default returns the built-in settings with no switches.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			Format:    OutputText,
			Color:     true,
			Highlight: "monokai",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Help: HelpConfig{
			ToolName: "switchkit",
			Style:    "auto",
			Width:    80,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the switchkit configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".switchkit"), nil
}

// DefaultPath returns the path used when no file is named.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "switches.toml"), nil
}

// FormatOf returns the file format implied by the path's extension.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load resolves the configuration file (SWITCHKIT_CONFIG, then the default
// path) and loads it. Without a file the defaults are returned.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path := os.Getenv("SWITCHKIT_CONFIG"); path != "" {
		return LoadFromPath(path)
	}

	path, err := DefaultPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads the file at path with full validation.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes data in the given format over Default(), so settings the
// file leaves out keep their defaults. Empty strings written explicitly are
// also replaced by defaults. It does not apply environment overrides or
// validate.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	fillDefaults(cfg)
	return cfg, nil
}

// fillDefaults replaces empty settings with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = defaults.Output.Format
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Help.ToolName == "" {
		cfg.Help.ToolName = defaults.Help.ToolName
	}
	if cfg.Help.Style == "" {
		cfg.Help.Style = defaults.Help.Style
	}
	if cfg.Help.Width == 0 {
		cfg.Help.Width = defaults.Help.Width
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Encode serializes cfg in the given format.
func Encode(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		buf.WriteString("# switchkit switch definitions\n\n")
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// Save writes cfg to path atomically, in the format implied by its extension.
func Save(cfg *Config, path string) error {
	data, err := Encode(cfg, FormatOf(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the settings and the shape of each switch entry.
// Switch naming rules are enforced by Registry, not here.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch strings.ToLower(c.Output.Format) {
	case OutputText, OutputJSON:
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: text, json", c.Output.Format),
		})
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	if c.Help.Width < 0 {
		errs = append(errs, ValidationError{
			Field:   "help.width",
			Message: "must not be negative",
		})
	}

	for i, s := range c.Switches {
		field := fmt.Sprintf("switches[%d]", i)
		if strings.TrimSpace(s.Long) == "" {
			errs = append(errs, ValidationError{Field: field + ".long", Message: "is required"})
		}
		if s.LongOnly && s.Short != "" {
			errs = append(errs, ValidationError{Field: field + ".short", Message: "must be empty for a long-only switch"})
		}
		for j, p := range s.Params {
			if p.Name == "" {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("%s.params[%d].name", field, j), Message: "is required"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyEnvOverrides applies SWITCHKIT_* environment variables:
//   - SWITCHKIT_FORMAT: overrides output.format
//   - SWITCHKIT_LOG_LEVEL: overrides logging.level
//   - SWITCHKIT_NO_COLOR: disables output.color when set to anything but 0/false
func (c *Config) ApplyEnvOverrides() {
	if format := os.Getenv("SWITCHKIT_FORMAT"); format != "" {
		c.Output.Format = strings.ToLower(format)
	}
	if level := os.Getenv("SWITCHKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if noColor := os.Getenv("SWITCHKIT_NO_COLOR"); noColor != "" {
		v := strings.ToLower(noColor)
		c.Output.Color = v == "0" || v == "false"
	}
}

// =============================================================================
// REGISTRY CONSTRUCTION
// =============================================================================

// Options converts s into switches.Define options.
func (s SwitchSpec) Options() []switches.Option {
	var opts []switches.Option
	switch {
	case s.LongOnly:
		opts = append(opts, switches.LongOnly())
	case s.Short != "":
		opts = append(opts, switches.WithShortName(s.Short))
	}
	opts = append(opts, switches.WithMinArgs(s.Min))
	if s.Max != nil {
		opts = append(opts, switches.WithMaxArgs(*s.Max))
	}
	if s.Argless {
		opts = append(opts, switches.Argless())
	}
	if s.Summary != "" {
		opts = append(opts, switches.WithSummary(s.Summary))
	}
	if s.Remarks != "" {
		opts = append(opts, switches.WithRemarks(s.Remarks))
	}
	return opts
}

// Registry defines every switch in file order. The first definition failure
// is returned wrapped with its position; errors.As still finds the
// *switches.DefinitionError.
func (c *Config) Registry(logger *zap.Logger) (*switches.Registry, error) {
	reg := switches.NewRegistry(switches.WithLogger(logger))
	for i, s := range c.Switches {
		h, err := reg.Define(s.Long, s.Options()...)
		if err != nil {
			return nil, fmt.Errorf("switches[%d]: %w", i, err)
		}
		for _, p := range s.Params {
			param := switches.Param{Name: p.Name, Type: p.Type, Variadic: p.Variadic}
			if err := reg.AddParam(h, param); err != nil {
				return nil, fmt.Errorf("switches[%d].params: %w", i, err)
			}
		}
	}
	return reg, nil
}

// =============================================================================
// SAMPLE
// =============================================================================

// Sample returns a small definition set written by "switchkit init".
func Sample() *Config {
	one := 1
	cfg := Default()
	cfg.Help.Description = "Copies files, optionally overwriting the destination."
	cfg.Switches = []SwitchSpec{
		{
			Long:    "output",
			Min:     1,
			Max:     &one,
			Summary: "Directory to copy into.",
			Params:  []ParamSpec{{Name: "dir", Type: switches.ParamString}},
		},
		{
			Long:    "files",
			Min:     1,
			Summary: "Files to copy.",
			Params:  []ParamSpec{{Name: "paths", Type: switches.ParamString, Variadic: true}},
		},
		{
			Long:     "force",
			LongOnly: true,
			Argless:  true,
			Summary:  "Overwrite existing files.",
		},
		{
			Long:    "verbose",
			Argless: true,
			Summary: "Print each file as it is copied.",
		},
		{
			Long:    "help",
			Argless: true,
			Summary: "Show this help page.",
		},
	}
	return cfg
}

// =============================================================================
// CLONE
// =============================================================================

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Switches = make([]SwitchSpec, len(c.Switches))
	for i, s := range c.Switches {
		s.Params = slices.Clone(s.Params)
		if s.Max != nil {
			m := *s.Max
			s.Max = &m
		}
		clone.Switches[i] = s
	}
	return &clone
}

// String returns the config as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
