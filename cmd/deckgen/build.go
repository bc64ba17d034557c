// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/generate"
	"github.com/pdiddy/deckgen/internal/history"
	"github.com/pdiddy/deckgen/internal/secrets"
)

var buildCmd = &cobra.Command{
	Use:   "build <deck.json>",
	Short: "Generate a .pptx file from a deck description",
	Long: `Build reads a deck description, creates one slide per descriptor, adds
the optional table of contents and slide numbers, and writes
<prefix>_YYYYMMDD_HHMMSS.pptx into the output directory.

Missing or unreadable pictures are logged and skipped. Any other error
stops the run and no file is written. Every run is recorded in the
history database unless history is disabled.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output-dir", "", "directory for the generated file (default .)")
	buildCmd.Flags().String("prefix", "", "output filename prefix (default presentation)")
	buildCmd.Flags().String("toc-title", "", "title of the contents slide (default Contents)")
	buildCmd.Flags().Bool("no-remote-images", false, "refuse http(s) picture paths")
	buildCmd.Flags().Bool("no-history", false, "do not record this run")

	_ = viper.BindPFlag("output_dir", buildCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("filename_prefix", buildCmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("toc_title", buildCmd.Flags().Lookup("toc-title"))

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Images.AuthToken = secrets.Default(loadedSecrets, secrets.ImageAuthToken, cfg.Images.AuthToken)
	if off, _ := cmd.Flags().GetBool("no-remote-images"); off {
		cfg.Images.AllowRemote = false
	}
	if off, _ := cmd.Flags().GetBool("no-history"); off {
		cfg.History.Enabled = false
	}

	log := logrus.StandardLogger()
	var opts []generate.Option
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			log.WithError(err).Warn("run history unavailable")
		} else {
			defer store.Close()
			opts = append(opts, generate.WithHistory(store))
		}
	}

	rec, err := generate.New(cfg, log, opts...).Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "wrote %s\n", rec.Output)
	fmt.Fprintf(w, "slides: %d, images: %d inserted, %d skipped\n",
		rec.Stats.Slides, rec.Stats.ImagesInserted, rec.Stats.ImagesSkipped)
	return nil
}
