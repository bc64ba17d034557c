package main

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of deckgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deckgen %s (gopresentation %s)\n", version, ppt.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
