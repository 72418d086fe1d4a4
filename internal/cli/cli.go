// Package cli implements the agentsgen command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/agentsgen/pkg/buildinfo"
	"github.com/matzehuels/agentsgen/pkg/deps/rust"
	"github.com/matzehuels/agentsgen/pkg/errors"
	"github.com/matzehuels/agentsgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "agentsgen"

	// manifestFile is the Cargo manifest read for the project summary.
	manifestFile = "Cargo.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Runner builds the pipeline runner for a project. Tests replace it to
	// stub dependency resolution.
	Runner func(root string, cfg pipeline.Config, logger *log.Logger) (*pipeline.Runner, error)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Runner: newRunner,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself generates the document.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.partsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner rendering code files in the config's
// style.
func newRunner(root string, cfg pipeline.Config, logger *log.Logger) (*pipeline.Runner, error) {
	renderer, err := cfg.Renderer()
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(root, renderer, pipeline.Languages, logger), nil
}

// =============================================================================
// Project Options
// =============================================================================

// projectOpts are the flags shared by commands that read a project.
type projectOpts struct {
	root   string // project root
	config string // config path; empty means <root>/.agents/agents.toml if present
	style  string // overrides the config's code style when set
}

func (o *projectOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.root, "root", "C", ".", "project root")
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "TOML config (default <root>/"+pipeline.DefaultConfigPath+" when present)")
	cmd.Flags().StringVar(&o.style, "style", "", "code file style: fence (default), xml")
}

// loadConfig returns the validated config for the project. A missing default
// config file means the default layout; a missing explicit one is an error.
func (o *projectOpts) loadConfig(logger *log.Logger) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	path := o.config
	if path == "" {
		def := filepath.Join(o.root, pipeline.DefaultConfigPath)
		if _, err := os.Stat(def); err == nil {
			path = def
		}
	}
	if path != "" {
		loaded, err := pipeline.LoadConfig(path)
		if err != nil {
			return pipeline.Config{}, err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", path)
	} else {
		logger.Debug("using default layout")
	}

	if o.style != "" {
		cfg.Style = o.style
	}
	if err := cfg.Validate(pipeline.Languages); err != nil {
		return pipeline.Config{}, err
	}
	return cfg, nil
}

// readManifest returns the project's Cargo manifest, or nil if there is none.
func (o *projectOpts) readManifest() (*rust.Manifest, error) {
	m, err := rust.ReadManifest(filepath.Join(o.root, manifestFile))
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return nil, nil
	}
	return m, err
}
