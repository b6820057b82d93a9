// Package migrations holds the SQL schema of the campaign and application
// store.
package migrations

import "embed"

// FS is read by golang-migrate through its iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects; Migrate stops there.
const Version = 1
