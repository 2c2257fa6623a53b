// Package migrations embeds the goose SQL migrations applied at startup.
package migrations

import "embed"

// Migrations holds the versioned SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
