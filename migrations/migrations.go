// Package migrations embebe los archivos SQL de esquema para golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
