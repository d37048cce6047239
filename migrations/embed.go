// Package migrations embeds the versioned SQL schema so the server and the
// migrate CLI apply the same files without depending on the working directory.
package migrations

import "embed"

// FS holds every *.up.sql / *.down.sql file in golang-migrate naming.
//
//go:embed *.sql
var FS embed.FS
