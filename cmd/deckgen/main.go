// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/secrets"
	"github.com/pdiddy/deckgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Generate PowerPoint decks from JSON descriptions",
	Long: `deckgen turns a JSON (or YAML) description of a presentation into a .pptx
file: titled slides on standard layouts, text with per-paragraph styling,
tables, pictures, an optional table of contents and slide numbers.

Use build to generate a deck, layouts to list the layout indexes a
description can reference, and history to review previous runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(viper.GetString("log_level"), viper.GetString("log_format")); err != nil {
			return err
		}
		s, err := secrets.Load(secrets.DefaultDir, logrus.StandardLogger())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logrus.WithField("keys", keys).Debug("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (default text)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	setDefaults(types.DefaultConfig())
}

// setDefaults registers every config key so file, env and flag values all
// reach viper.Unmarshal.
func setDefaults(d types.Config) {
	viper.SetDefault("output_dir", d.Dir)
	viper.SetDefault("filename_prefix", d.FilenamePrefix)
	viper.SetDefault("toc_title", d.TOCTitle)
	viper.SetDefault("log_level", d.Level)
	viper.SetDefault("log_format", d.Format)
	viper.SetDefault("images.timeout", d.Images.Timeout)
	viper.SetDefault("images.user_agent", "deckgen/"+version)
	viper.SetDefault("images.max_retries", d.Images.MaxRetries)
	viper.SetDefault("images.max_bytes", d.Images.MaxBytes)
	viper.SetDefault("images.allow_remote", d.Images.AllowRemote)
	viper.SetDefault("images.auth_token", "")
	viper.SetDefault("history.enabled", d.History.Enabled)
	viper.SetDefault("history.path", d.History.Path)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	viper.SetEnvPrefix("DECKGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged viper settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// setupLogging configures the standard logrus logger.
func setupLogging(level, format string) error {
	if level == "" {
		level = types.DefaultLogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)

	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q: use text or json", format)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
