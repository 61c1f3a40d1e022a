package fragql

// Quoter renders an identifier in its dialect-correct quoted form. The
// compiler never embeds quoting logic itself; the postgres, sqlite, mysql,
// and mssql subpackages provide implementations.
type Quoter interface {
	Quote(ident string) string
}

// QuoterFunc adapts a function to the Quoter interface.
type QuoterFunc func(string) string

// Quote implements Quoter.
func (f QuoterFunc) Quote(ident string) string {
	return f(ident)
}

// Plain passes identifiers through unquoted, for dialect-neutral output.
var Plain Quoter = QuoterFunc(func(ident string) string { return ident })
