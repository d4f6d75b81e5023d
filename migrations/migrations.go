// Package migrations embeds the goose SQL migrations so the migrate binary
// can run without the source tree.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
