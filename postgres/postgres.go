// Package postgres provides the PostgreSQL dialect for fragql.
//
// The quoter wraps identifiers in double quotes via pgx, and Rebind
// converts the compiler's ? placeholders into the $1, $2 ordinals the
// PostgreSQL wire protocol expects.
package postgres

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/zoobzio/fragql"
)

// Quoter quotes identifiers with double quotes, doubling any embedded
// quote characters.
var Quoter fragql.Quoter = fragql.QuoterFunc(func(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
})

// New creates a compiler configured for PostgreSQL.
func New() *fragql.Compiler {
	return fragql.New(Quoter)
}

// Rebind rewrites ? placeholders as $1, $2, and so on, in order.
// Placeholders inside single-quoted strings, double-quoted identifiers,
// and line comments are left alone.
func Rebind(sql string) string {
	var out strings.Builder
	out.Grow(len(sql) + 8)

	n := 0
	for i := 0; i < len(sql); i++ {
		ch := sql[i]
		switch ch {
		case '?':
			n++
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(n))
		case '\'', '"':
			i = writeSpan(&out, sql, i, ch)
		case '-':
			if i+1 < len(sql) && sql[i+1] == '-' {
				i = writeLineComment(&out, sql, i)
				continue
			}
			out.WriteByte(ch)
		default:
			out.WriteByte(ch)
		}
	}
	return out.String()
}

// writeSpan copies a quoted span starting at sql[start], honoring the
// doubled-quote escape, and returns the index of its closing quote.
func writeSpan(out *strings.Builder, sql string, start int, quote byte) int {
	out.WriteByte(quote)
	for i := start + 1; i < len(sql); i++ {
		out.WriteByte(sql[i])
		if sql[i] == quote {
			if i+1 < len(sql) && sql[i+1] == quote {
				out.WriteByte(quote)
				i++
				continue
			}
			return i
		}
	}
	return len(sql)
}

// writeLineComment copies from -- through end of line.
func writeLineComment(out *strings.Builder, sql string, start int) int {
	for i := start; i < len(sql); i++ {
		out.WriteByte(sql[i])
		if sql[i] == '\n' {
			return i
		}
	}
	return len(sql)
}
