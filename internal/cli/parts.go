package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/agentsgen/pkg/pipeline"
)

// Part statuses shown by the parts command.
const (
	statusText      = "text"
	statusPresent   = "present"
	statusMissing   = "missing"
	statusSkipped   = "skipped"
	statusUnchecked = "not resolved"
)

// partsOpts holds the command-line flags for the parts command.
type partsOpts struct {
	projectOpts
	resolve bool // locate dependency files through the build system
}

// partsCommand creates the command that lists the document's parts.
func (c *CLI) partsCommand() *cobra.Command {
	var opts partsOpts

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the parts of the document and whether their files exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParts(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.resolve, "resolve", false, "resolve dependencies (runs the build system's metadata query)")

	return cmd
}

// partRow is one line of the parts table.
type partRow struct {
	part     pipeline.Part
	location string
	status   string
}

func (c *CLI) runParts(ctx context.Context, w io.Writer, opts *partsOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.loadConfig(logger)
	if err != nil {
		return err
	}
	runner, err := c.Runner(opts.root, cfg, logger)
	if err != nil {
		return err
	}

	plan := cfg.Plan()
	rows := make([]partRow, len(plan))
	for i, part := range plan {
		rows[i] = opts.inspect(ctx, runner, part)
	}

	title := appName
	if m, err := opts.readManifest(); err == nil && m != nil && m.Package.Name != "" {
		title = m.Package.Name + " " + m.Package.Version
	}
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, renderPartsTable(rows))
	return nil
}

// inspect reports where a part's file is and whether it exists. Dependency
// parts are only located when opts.resolve is set.
func (o *partsOpts) inspect(ctx context.Context, runner *pipeline.Runner, part pipeline.Part) partRow {
	row := partRow{part: part}
	switch part.Kind {
	case pipeline.KindLiteral:
		row.status = statusText
		return row
	case pipeline.KindDependency:
		if !o.resolve {
			row.status = statusUnchecked
			return row
		}
		res, err := runner.Resolver(part.Ecosystem)
		if err == nil {
			var dir string
			if dir, err = res.PackageDir(ctx, part.Dependency); err == nil {
				row.location = filepath.Join(dir, part.Path)
			}
		}
		if err != nil {
			row.status = statusMissing
			row.location = err.Error()
			return row
		}
	default:
		row.location = filepath.Join(o.root, part.Path)
	}

	_, err := os.Stat(row.location)
	switch {
	case err == nil:
		row.status = statusPresent
	case part.Kind == pipeline.KindOptionalFile:
		row.status = statusSkipped
	default:
		row.status = statusMissing
	}
	return row
}

func renderPartsTable(rows []partRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{strconv.Itoa(i + 1), string(r.part.Kind), r.part.Source(), r.status, r.location}
	}

	base := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Source", "Status", "Location").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(rows) {
				return base
			}
			if col == 4 {
				return base.Foreground(colorGray)
			}
			if col != 3 {
				return base
			}
			switch rows[row].status {
			case statusPresent:
				return base.Foreground(colorGreen)
			case statusMissing:
				return base.Foreground(colorRed)
			case statusSkipped, statusUnchecked:
				return base.Foreground(colorDim)
			}
			return base
		})
	return t.Render()
}
