package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "pixvaultctl",
	Short: "PixVault administration tool",
	Long: `Administration tool for PixVault deployments.

Manages the database schema, seeds fresh deployments from bootstrap data,
and mints API keys for operators.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()
	Execute()
}

// newLogger builds the CLI logger at the configured level, which already
// layers defaults, pixvault.yml, and PIXVAULT_LOG_LEVEL.
func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = parsed
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
