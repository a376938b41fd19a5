// Package migrations embeds the goose migration scripts for the sqlite
// key/value backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
