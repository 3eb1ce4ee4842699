package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"xzqh/internal/config"
	"xzqh/internal/crawl"
	"xzqh/internal/logging"
	"xzqh/internal/source"
)

type rootFlags struct {
	config   string
	cacheDir string
	output   string
	sqlite   string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "xzqh",
		Short:         "Build the year -> code -> name division dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			logger.Info("执行开始")
			report, err := crawl.Execute(cmd.Context(), cfg, source.Table, nil, logger)
			if err != nil {
				return err
			}
			logger.Info("执行结束")

			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&flags.cacheDir, "cache-dir", "", "Directory holding downloaded pages")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Dataset JSON output path")
	rootCmd.Flags().StringVar(&flags.sqlite, "sqlite", "", "Also export the dataset to this SQLite file")

	rootCmd.AddCommand(newLookupCommand())
	rootCmd.AddCommand(newIDNumberCommand())

	return rootCmd
}

// loadConfig applies explicitly set flags over the config file.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.CacheDir = flags.cacheDir
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.output
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.SQLitePath = flags.sqlite
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}
