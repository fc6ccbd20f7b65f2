// Package database holds the catalog schema and seed data as embedded migrations.
package database

import "embed"

//go:embed migration/*.sql
var Migrations embed.FS
