package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/io"
)

func (c *CLI) dataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export or validate dataset files",
		Long: `Datasets hold the centers, regions, flow levels and chart series the
dashboard draws. They can be written as JSON, YAML or TOML; the format
follows the file extension.`,
	}

	cmd.AddCommand(c.dataExportCommand())
	cmd.AddCommand(c.dataValidateCommand())

	return cmd
}

func (c *CLI) dataExportCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a dataset (the bundled sample by default) to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.loadData(from)
			if err != nil {
				return err
			}
			if err := io.ExportData(args[0], data); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Exported %d centers", len(data.Centers))
			printFile(cmd.OutOrStdout(), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "data", "", "dataset to export (default: bundled sample)")

	return cmd
}

func (c *CLI) dataValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a dataset file loads and every view can be laid out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			data, err := io.ImportData(args[0])
			if err != nil {
				return err
			}

			var failed int
			for _, t := range dashboard.Tabs {
				if t == dashboard.TabArchitecture {
					if err := data.Architecture.Validate(); err != nil {
						printError(w, "%s: %v", t, err)
						failed++
					}
					continue
				}
				if _, err := dashboard.Build(data, dashboard.NewView().WithTab(t), dashboard.Size{}); err != nil {
					printError(w, "%s: %v", t, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%s: %d of %d views cannot be drawn", args[0], failed, len(dashboard.Tabs))
			}
			printSuccess(w, "%s is valid", args[0])
			printDetail(w, "%d regions, %d centers, %d flows", len(data.Regions), len(data.Centers), len(data.Flows))
			return nil
		},
	}
}
