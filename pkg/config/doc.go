// Package config provides configuration management for the PixVault
// bootstrap tooling.
//
// Configuration is layered: built-in defaults, then an optional
// pixvault.yml file, then environment variables.
//
// # Key Configuration Options
//
//   - BOOTSTRAP_LOCATION / PIXVAULT_BOOTSTRAP_LOCATION: seed data directory
//   - PIXVAULT_FILE_PATTERN: seed file glob
//   - PIXVAULT_LOG_LEVEL: logging verbosity
//   - DATABASE_URL: database connection (read by pkg/db, not here)
package config
