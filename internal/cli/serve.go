package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen   string
		dataPath string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: `Serve the dashboard over HTTP until interrupted.

  /                         tabbed dashboard page (?view=, ?theme=, ?selected=)
  /views/{view}/{format}    a single artifact
  /api/views, /api/summary  JSON metadata and KPIs
  /healthz                  liveness probe

Set cache.backend to redis to share rendered artifacts between replicas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if listen == "" {
				listen = c.Config.Listen
			}
			data, err := c.loadData(dataPath)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, data, c.Logger, server.WithTheme(c.Config.Theme))
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&dataPath, "data", "", "dataset file (default: bundled sample)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
