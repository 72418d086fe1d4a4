package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/agentsgen/pkg/deps/rust"
	"github.com/matzehuels/agentsgen/pkg/errors"
	"github.com/matzehuels/agentsgen/pkg/observability"
	"github.com/matzehuels/agentsgen/pkg/pipeline"
)

// generateOpts holds the command-line flags for document generation.
type generateOpts struct {
	projectOpts
	output string // output file; empty writes to stdout
	check  bool   // compare with output instead of writing it
}

// generateCommand creates the command that assembles the guidelines document.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Assemble an aggregated agent-guidelines document",
		Long: `agentsgen concatenates guideline fragments, documentation shipped with
dependencies and selected project files into a single Markdown document.

Markdown files have their headings shifted down one level; other files are
embedded under a "### path" heading in a fenced code block.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.check && opts.output == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--check requires --output")
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if --output is not up to date")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, stdout, stderr io.Writer, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.loadConfig(logger)
	if err != nil {
		return err
	}
	opts.warnUndeclared(stderr, logger, cfg)

	runner, err := c.Runner(opts.root, cfg, logger)
	if err != nil {
		return err
	}

	stats := &runStats{}
	observability.SetPipelineHooks(stats)
	observability.SetDependencyHooks(stats)
	defer observability.Reset()

	prog := newProgress(logger)
	spinner := startSpinner(ctx, stderr, "Assembling guidelines...")
	doc, err := runner.Execute(ctx, cfg.Plan())
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(stats.summary())

	if opts.check {
		return checkOutput(stderr, opts.output, doc)
	}
	return writeOutput(stdout, stderr, opts.output, doc)
}

// writeOutput writes doc to stdout or, when path is set, to the file at path.
func writeOutput(stdout, stderr io.Writer, path string, doc []byte) error {
	if path == "" {
		_, err := stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return errors.WrapFile(err, "write %s", path)
	}
	printSuccess(stderr, "Wrote %s", StyleValue.Render(path))
	printDetail(stderr, "%d bytes", len(doc))
	return nil
}

// warnUndeclared prints a warning for cargo dependencies in cfg that the
// project's Cargo.toml does not declare. Resolving such a dependency fails
// later; the warning names the likely cause.
func (o *projectOpts) warnUndeclared(w io.Writer, logger *log.Logger, cfg pipeline.Config) {
	manifest, err := o.readManifest()
	if err != nil {
		logger.Debug("skipping manifest check", "err", err)
		return
	}
	if manifest == nil {
		return
	}
	logger.Debug("read manifest", "package", manifest.Package.Name, "version", manifest.Package.Version)
	for _, d := range cfg.Dependencies {
		if !rust.Language.Matches(d.Ecosystem) {
			continue
		}
		if !manifest.Declares(d.Name) {
			printWarning(w, "%s does not declare dependency %s", manifestFile, d.Name)
			if names := manifest.DependencyNames(); len(names) > 0 {
				printDetail(w, "declared: %s", strings.Join(names, ", "))
			}
		}
	}
}
