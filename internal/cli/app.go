// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Root command, global flags and per-invocation state.

package cli

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/switchkit/internal/config"
	"github.com/jeranaias/switchkit/internal/logging"
	"github.com/jeranaias/switchkit/internal/switches"
)

// skipConfig is the annotation key of commands that run without a loaded
// definition file.
const skipConfig = "switchkit/skip-config"

// App holds the state of one CLI invocation.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// interactive reports whether In is a terminal that can answer prompts.
	interactive func() bool

	configPath string
	jsonOut    bool
	verbose    bool
	noColor    bool

	source string // path the definitions came from, "" for built-in defaults
	cfg    *config.Config
	logger *zap.Logger
	runID  string
}

// NewApp creates an App writing to out and errOut.
func NewApp(out, errOut io.Writer) *App {
	return &App{
		In:          os.Stdin,
		Out:         out,
		Err:         errOut,
		interactive: IsTTY,
		logger:      zap.NewNop(),
	}
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the CLI with args and returns the exit code.
func Run(args []string, out, errOut io.Writer) int {
	return NewApp(out, errOut).Run(args)
}

// Run executes the command tree with args and returns the exit code.
// Errors are written to a.Err.
func (a *App) Run(args []string) int {
	root := a.NewRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.logger.Debug("command failed", zap.Error(err))
		DisplayError(a.Err, err, a.jsonMode())
		return GetExitCode(err)
	}
	return ExitSuccess
}

// NewRootCmd builds the command tree bound to a.
func (a *App) NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "switchkit",
		Short: "Define command-line switches and classify argument vectors",
		Long: `switchkit loads switch definitions from a TOML, JSON or YAML file and
classifies argument vectors against them: leading arguments, per-switch
values and trailing arguments.

Definition file: --config, $SWITCHKIT_CONFIG, or ~/.switchkit/switches.toml.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Definition file (TOML, JSON or YAML)")
	flags.BoolVar(&a.jsonOut, "json", false, "Write results as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		a.newCheckCmd(),
		a.newParseCmd(),
		a.newResolveCmd(),
		a.newInferCmd(),
		a.newReplCmd(),
		a.newInitCmd(),
	)
	root.SetHelpCommand(a.newHelpCmd())
	return root
}

// setup loads the definition file and builds the logger.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	a.runID = uuid.NewString()
	if a.noColor {
		ForceColorsEnabled(false)
	}

	cfg := config.Default()
	cfg.ApplyEnvOverrides()
	if cmd.Annotations[skipConfig] == "" {
		loaded, err := a.loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.jsonOut {
		cfg.Output.Format = config.OutputJSON
	}
	if !cfg.Output.Color {
		ForceColorsEnabled(false)
	}
	a.cfg = cfg
	config.SetGlobal(cfg)

	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level: level,
		JSON:  cfg.Logging.JSON,
		RunID: a.runID,
	})
	if err != nil {
		return WrapError(err, "failed to initialize logger")
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("source", a.sourceName()),
		zap.Int("switches", len(cfg.Switches)))
	return nil
}

// loadConfig resolves the definition file the way config.Load does, keeping
// the path for reports and --watch.
func (a *App) loadConfig() (*config.Config, error) {
	path := a.resolvePath()
	a.source = path

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &configLoadError{Path: path, Err: err}
	}
	return cfg, nil
}

func (a *App) resolvePath() string {
	if a.configPath != "" {
		return a.configPath
	}
	if env := os.Getenv("SWITCHKIT_CONFIG"); env != "" {
		return env
	}
	if p, err := config.DefaultPath(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			return p
		}
	}
	return ""
}

func (a *App) sourceName() string {
	if a.source == "" {
		return "built-in defaults"
	}
	return a.source
}

// registry defines the loaded switches in a fresh registry.
func (a *App) registry() (*switches.Registry, error) {
	return a.cfg.Registry(a.logger)
}

func (a *App) jsonMode() bool {
	if a.jsonOut {
		return true
	}
	return a.cfg != nil && a.cfg.Output.Format == config.OutputJSON
}

// highlightStyle is the chroma style for JSON output, "" for none.
func (a *App) highlightStyle() string {
	if a.cfg == nil || !ColorsEnabled() {
		return ""
	}
	if a.cfg.Output.Highlight == "none" {
		return ""
	}
	return a.cfg.Output.Highlight
}

// emit writes data as a JSON response in JSON mode, or calls text otherwise.
func (a *App) emit(command string, data any, text func(io.Writer)) error {
	if a.jsonMode() {
		return NewJSONResponse(command, a.runID, data).Write(a.Out, a.highlightStyle())
	}
	text(a.Out)
	return nil
}

func (a *App) width() int {
	if a.cfg != nil && a.cfg.Help.Width > 0 && !IsStdoutTTY() {
		return a.cfg.Help.Width
	}
	return GetTerminalWidth()
}
