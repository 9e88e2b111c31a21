package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cansdash/pkg/dashboard"
)

func (c *CLI) summaryCommand() *cobra.Command {
	var (
		dataPath string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard KPIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.loadData(dataPath)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dashboard.Summarize(data))
			}
			printSummary(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "dataset file (default: bundled sample)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

func printSummary(w io.Writer, d dashboard.Data) {
	s := dashboard.Summarize(d)

	fmt.Fprintln(w, StyleTitle.Render("Kentucky CMHC CANS Dashboard"))
	fmt.Fprintln(w, kpiTable(s))

	var shares []string
	for _, sh := range s.Outcomes {
		shares = append(shares, fmt.Sprintf("%s %d%%", sh.Label, sh.Percent))
	}
	if len(shares) > 0 {
		printKeyValue(w, "Outcomes", strings.Join(shares, " · "))
	}

	if len(d.Centers) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, centerTable(d))
	}
	for _, c := range d.Centers {
		if c.Alerts == 0 {
			continue
		}
		printWarning(w, "%s: %s", c.Name, dashboard.AlertHeadline(c))
		for _, note := range dashboard.AlertNotes(c) {
			printDetail(w, "%s", note)
		}
	}
}
