// Package mssql provides the SQL Server dialect for fragql.
//
// The quoter wraps identifiers in square brackets, and Rebind converts
// the compiler's ? placeholders into the @p1, @p2 names the go-mssqldb
// driver expects.
package mssql

import (
	"strconv"
	"strings"

	"github.com/zoobzio/fragql"
)

// Quoter quotes identifiers with square brackets, doubling any embedded
// closing brackets.
var Quoter fragql.Quoter = fragql.QuoterFunc(func(ident string) string {
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
})

// New creates a compiler configured for SQL Server.
func New() *fragql.Compiler {
	return fragql.New(Quoter)
}

// Rebind rewrites ? placeholders as @p1, @p2, and so on, in order.
// Placeholders inside single-quoted strings and bracketed identifiers
// are left alone.
func Rebind(sql string) string {
	var out strings.Builder
	out.Grow(len(sql) + 16)

	n := 0
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		switch ch {
		case '?':
			n++
			out.WriteString("@p")
			out.WriteString(strconv.Itoa(n))
		case '\'':
			i = writeQuoted(&out, sql, i)
		case '[':
			i = writeBracketed(&out, sql, i)
		default:
			out.WriteByte(ch)
		}
	}
	return out.String()
}

// writeQuoted copies a single-quoted string starting at sql[start],
// honoring the doubled-quote escape, and returns the index of its
// closing quote.
func writeQuoted(out *strings.Builder, sql string, start int) int {
	out.WriteByte('\'')
	for i := start + 1; i < len(sql); i++ {
		out.WriteByte(sql[i])
		if sql[i] == '\'' {
			if i+1 < len(sql) && sql[i+1] == '\'' {
				out.WriteByte('\'')
				i++
				continue
			}
			return i
		}
	}
	return len(sql)
}

// writeBracketed copies a bracketed identifier starting at sql[start],
// honoring the doubled-bracket escape, and returns the index of its
// closing bracket.
func writeBracketed(out *strings.Builder, sql string, start int) int {
	out.WriteByte('[')
	for i := start + 1; i < len(sql); i++ {
		out.WriteByte(sql[i])
		if sql[i] == ']' {
			if i+1 < len(sql) && sql[i+1] == ']' {
				out.WriteByte(']')
				i++
				continue
			}
			return i
		}
	}
	return len(sql)
}
