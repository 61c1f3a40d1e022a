// Package sqlite provides the SQLite dialect for fragql.
//
// SQLite accepts ? placeholders natively, so compiled fragments run
// against database/sql with no rebinding.
package sqlite

import (
	"strings"

	"github.com/zoobzio/fragql"
)

// Quoter quotes identifiers with double quotes, doubling any embedded
// quote characters.
var Quoter fragql.Quoter = fragql.QuoterFunc(func(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
})

// New creates a compiler configured for SQLite.
func New() *fragql.Compiler {
	return fragql.New(Quoter)
}
