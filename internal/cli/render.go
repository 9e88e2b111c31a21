package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	cerrors "github.com/matzehuels/cansdash/pkg/errors"
	"github.com/matzehuels/cansdash/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	renderFlags
	output  string // output file (one view, one format) or directory
	formats string // comma-separated output formats
	all     bool   // render every view
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [view...]",
		Short: "Render dashboard views to files",
		Long: `Render one or more dashboard views.

Views: ` + strings.Join(dashboard.TabNames(), ", ") + `

Each view is written as <output>/<view>.<format>. With a single view and a
single format, -o may name the file itself. Formats a view cannot produce
(the interactive page of the overview, for example) are skipped with a
warning.

Artifacts are cached by dataset and options; --refresh re-renders them.`,
		ValidArgs: dashboard.TabNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory (default: current directory)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json, html (comma-separated; default from config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every view")
	opts.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, views []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	switch {
	case opts.all:
		views = dashboard.TabNames()
	case len(views) == 0:
		views = []string{string(dashboard.TabOverview)}
	}

	data, err := c.loadData(opts.data)
	if err != nil {
		return err
	}
	popts := c.options(opts.renderFlags, &data)
	if opts.formats != "" {
		popts.Formats = parseFormats(opts.formats)
	}
	if err := pipeline.ValidateFormats(popts.Formats); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", strings.Join(views, ", ")))
	spin.Start()
	results, err := runner.RenderAll(ctx, views, popts)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d views", len(results)))

	single := len(results) == 1 && len(results[0].Artifacts) == 1 && len(results[0].Skipped) == 0
	for _, res := range results {
		printInfo(w, "%s", dashboard.Tab(res.View).Label())
		files := 0
		for _, format := range popts.Formats {
			artifact, ok := res.Artifacts[format]
			if !ok {
				continue
			}
			path := outputPath(opts.output, res.View, format, single)
			if err := writeFile(path, artifact); err != nil {
				return err
			}
			printFile(w, path)
			files++
		}
		for _, format := range res.Skipped {
			printWarning(w, "%s has no %s rendering, skipped", res.View, format)
		}
		printStats(w, res.Stats.Primitives, files, res.CacheInfo.RenderHit)
	}
	printNextStep(w, "Browse interactively", appName+" tui")
	return nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// outputPath decides where an artifact goes. When single is set and output
// has an extension, output is the file itself; otherwise output is a
// directory and the file is named <view>.<format>.
func outputPath(output, view, format string, single bool) string {
	if single && filepath.Ext(output) != "" {
		return output
	}
	if output == "" {
		output = "."
	}
	return filepath.Join(output, view+"."+format)
}

func writeFile(path string, data []byte) error {
	if err := cerrors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
