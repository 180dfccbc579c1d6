package migrations

import "embed"

// Postgres embeds all postgres migration files.
//
//go:embed postgres/*.sql
var Postgres embed.FS
