// Package migrations embeds the goose SQL migration set so the binary can
// migrate any environment it is pointed at without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
