// Package mysql provides the MySQL and MariaDB dialect for fragql.
//
// MySQL accepts ? placeholders natively, so compiled fragments run
// against database/sql with no rebinding.
package mysql

import (
	"strings"

	"github.com/zoobzio/fragql"
)

// Quoter quotes identifiers with backticks, doubling any embedded
// backtick characters.
var Quoter fragql.Quoter = fragql.QuoterFunc(func(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
})

// New creates a compiler configured for MySQL.
func New() *fragql.Compiler {
	return fragql.New(Quoter)
}
