package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/occload/internal/config"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "occload",
	Short: "Occurrence record normalizer and Postgres loader",
	Long: "Normalizes biodiversity occurrence records, splitting free-text and partial dates " +
		"into year/month/day, and bulk-loads them into Postgres via the COPY protocol.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		return cfg.LoadFromFile(configPath)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("OCCLOAD_DB_URL"), "Postgres connection string (or set OCCLOAD_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&configPath, "config", "", "YAML config file listing the date fields to normalize")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
