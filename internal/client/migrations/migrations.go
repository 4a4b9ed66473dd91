// Package migrations embeds the goose migration files for the client-side
// SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
