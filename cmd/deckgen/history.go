// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/history"
	"github.com/pdiddy/deckgen/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generation runs",
	Long: `History lists previous build runs from the history database, newest
first, with their status, output file and slide counts. Use --format to
export the records as YAML or JSON.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().String("format", "table", "output format: table, yaml or json")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "table", "":
		formatHistory(w, runs)
		return nil
	case "yaml":
		return history.ExportYAML(w, runs)
	case "json":
		return history.ExportJSON(w, runs)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml or json", format)
	}
}

func formatHistory(w io.Writer, runs []types.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-19s  %-9s  %-6s  %-8s  %s\n", "Started", "Status", "Slides", "Took", "Output / Error")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, r := range runs {
		detail := r.Output
		if r.Status == types.RunFailed {
			detail = r.Error
		}
		if len(detail) > 40 {
			detail = detail[:37] + "..."
		}
		fmt.Fprintf(w, "%-19s  %-9s  %-6d  %-8s  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status, r.Stats.Slides, r.Duration().Round(time.Millisecond), detail)
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}
