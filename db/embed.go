// Package db embeds the SQL migrations that define the PixVault schema.
package db

import "embed"

// Migrations holds the SQL migration files applied by pixvaultctl db migrate.
//
//go:embed migrations
var Migrations embed.FS
