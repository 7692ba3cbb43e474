// Package migrations embute o esquema do banco SQLite.
package migrations

import "embed"

// FS contém os arquivos NNN_nome.up.sql aplicados em ordem
//
//go:embed *.sql
var FS embed.FS
