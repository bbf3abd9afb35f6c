// Package migrations embeds the SQL schema so the binaries migrate from any working directory.
package migrations

import "embed"

//go:embed postgres/*.sql
var FS embed.FS

// Dir is the FS subdirectory holding the postgres migrations.
const Dir = "postgres"
