// Package main implements pixvaultctl, the PixVault administration CLI.
//
// # Quick Start
//
//	# Create the schema
//	pixvaultctl db migrate
//
//	# Mint an API key and reference it from seed data
//	export ADMIN_API_KEY="$(pixvaultctl api-key generate)"
//
//	# Seed the deployment
//	pixvaultctl bootstrap ./bootstrap_data
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - BOOTSTRAP_LOCATION: default seed data directory
//   - PIXVAULT_LOG_LEVEL: log level (debug, info, warn, error)
//
// Seed files are liquid templates over JSON, named <name>.<type>.json, and
// may reference any environment variable. The whole bootstrap commits
// atomically or not at all.
package main
