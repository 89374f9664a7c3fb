package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixvault/pixvault/pkg/bootstrap"
	"github.com/pixvault/pixvault/pkg/config"
	"github.com/pixvault/pixvault/pkg/db"
)

// bootstrapCmd represents the bootstrap command
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [location]",
	Short: "Seed a fresh deployment from a directory of bootstrap data",
	Long: `Seed a fresh deployment from a directory of bootstrap data.

Loads every <name>.<type>.json file under the location (default
BOOTSTRAP_LOCATION or ./bootstrap_data) into the database in a single
transaction. Files are rendered as liquid templates against the process
environment before loading. Either everything commits or nothing does.

Example:
  pixvaultctl bootstrap
  pixvaultctl bootstrap ./bootstrap_data
  pixvaultctl bootstrap --dry-run ./bootstrap_data`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, location, err := resolveBootstrapConfig(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve bootstrap configuration: %v\n", err)
			os.Exit(1)
		}

		if err := runBootstrap(cfg, location, dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Bootstrap failed: %v\n", err)
			os.Exit(1)
		}

		if dryRun {
			fmt.Printf("Bootstrap data in %s is valid (dry run, nothing committed)\n", location)
		} else {
			fmt.Printf("Bootstrap data in %s loaded\n", location)
		}
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
	bootstrapCmd.Flags().Bool("dry-run", false, "Validate the bootstrap data and roll back instead of committing")
}

// resolveBootstrapConfig loads and validates the layered configuration and
// resolves the seed location, letting a positional argument override it.
func resolveBootstrapConfig(args []string) (*config.PixVaultConfig, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	location := cfg.BootstrapLocation
	if len(args) > 0 {
		location = args[0]
	}
	return cfg, location, nil
}

// newConfiguredLoader builds a loader honoring the configured file pattern.
func newConfiguredLoader(database *gorm.DB, cfg *config.PixVaultConfig, logger *zap.Logger, dryRun bool) *bootstrap.Loader {
	return bootstrap.NewLoader(database).
		WithLogger(logger).
		WithPattern(cfg.FilePattern).
		WithDryRun(dryRun)
}

func runBootstrap(cfg *config.PixVaultConfig, location string, dryRun bool) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	return newConfiguredLoader(database, cfg, logger, dryRun).Bootstrap(location)
}
