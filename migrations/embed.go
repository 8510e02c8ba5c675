package migrations

import "embed"

// FS holds the SQL migrations applied by "app db migrate" and the test database template.
//
//go:embed *.sql
var FS embed.FS

// Dir is the root of FS the migration source reads from.
const Dir = "."
