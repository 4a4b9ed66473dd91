// Package migrations embeds the server schema, one directory per supported
// dialect. The repository managers pass the matching directory to goose.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
