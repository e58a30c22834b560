// Package migrations embeds the goose SQL migrations so every binary can
// run them without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
