// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the slide layouts a deck can reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatLayouts(cmd.OutOrStdout(), layout.Catalog(), jsonOutput)
	},
}

type layoutEntry struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Placeholders []string `json:"placeholders"`
}

func formatLayouts(w io.Writer, catalog []layout.Layout, jsonOutput bool) error {
	entries := make([]layoutEntry, len(catalog))
	for i, l := range catalog {
		kinds := make([]string, len(l.Placeholders))
		for j, ph := range l.Placeholders {
			kinds[j] = string(ph.Kind)
		}
		entries[i] = layoutEntry{Index: l.Index, Name: l.Name, Placeholders: kinds}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintf(w, "%-5s  %-26s  %s\n", "Index", "Name", "Placeholders")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, e := range entries {
		phs := strings.Join(e.Placeholders, ", ")
		if phs == "" {
			phs = "-"
		}
		fmt.Fprintf(w, "%-5d  %-26s  %s\n", e.Index, e.Name, phs)
	}
	return nil
}

func init() {
	layoutsCmd.Flags().Bool("json", false, "output layouts as JSON")
	rootCmd.AddCommand(layoutsCmd)
}
