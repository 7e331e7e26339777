package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/matheuskafuri/readlater/internal/config"
	"github.com/matheuskafuri/readlater/internal/logging"
	"github.com/matheuskafuri/readlater/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagOutput   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "readlater",
	Short:         "Command line client for read-it-later services",
	Long:          "readlater talks to read-it-later services such as Pocket from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: human or json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pocketCmd)
}

// loadConfig reads the config file and applies the persistent flag overrides.
func loadConfig() (*config.Config, output.Format, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, output.Human, fmt.Errorf("loading config: %w", err)
	}

	format := cfg.GetOutputFormat()
	if flagOutput != "" {
		format = flagOutput
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, output.Human, fmt.Errorf("invalid --output value: %w", err)
	}
	return cfg, f, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level := cfg.GetLogLevel()
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
