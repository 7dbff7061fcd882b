// Package migrations embeds the goose SQL migrations so the server binary
// can apply them without shipping loose files.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
