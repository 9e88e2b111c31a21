package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/pipeline"
)

func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [view]",
		Short: "Print a view's computed layout as JSON",
		Long: `Compute the chart primitives of one view and print them as JSON.

The output is the same document as 'render -f json': every rect, line,
circle, path and text the view draws, in canvas coordinates. The
architecture view prints its diagram description instead.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: dashboard.TabNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := string(dashboard.TabOverview)
			if len(args) == 1 {
				view = args[0]
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), view, flags, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, w io.Writer, view string, flags renderFlags, output string) error {
	data, err := c.loadData(flags.data)
	if err != nil {
		return err
	}
	opts := c.options(flags, &data)
	opts.View = view
	opts.Formats = []string{pipeline.FormatJSON}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	chart, err := pipeline.Layout(ctx, opts)
	if err != nil {
		return err
	}
	out, err := pipeline.RenderFormat(chart, opts, pipeline.FormatJSON)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := w.Write(append(out, '\n'))
		return err
	}
	if err := writeFile(output, out); err != nil {
		return err
	}
	loggerFromContext(ctx).Info("wrote layout", "view", opts.View, "primitives", len(chart.Primitives), "path", output)
	return nil
}
