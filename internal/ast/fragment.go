package ast

import "strings"

// Fragment is the compiler's output: SQL text with positional ?
// placeholders, and the bound args in placeholder order. The count and
// left-to-right order of placeholders always equals the length and order
// of Args, through every composition.
type Fragment struct {
	SQL  string
	Args []any
}

// Blank reports whether the fragment renders no text. Blank fragments are
// dropped during composition so absent clauses leave no stray separators.
func (f Fragment) Blank() bool {
	return strings.TrimSpace(f.SQL) == ""
}

// Wrap parenthesizes the text, preserving args. Used when a statement is
// embedded as a scalar or boolean expression.
func (f Fragment) Wrap() Fragment {
	return Fragment{SQL: "(" + f.SQL + ")", Args: f.Args}
}

// Unwrap strips one matching leading/trailing parenthesis pair, so a
// previously wrapped statement can be spliced into a parent's text without
// double parenthesization. Text not enclosed by a single matching pair is
// returned unchanged.
func (f Fragment) Unwrap() Fragment {
	s := f.SQL
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return f
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			// The opening paren must close at the final byte.
			if depth == 0 && i != len(s)-1 {
				return f
			}
		}
	}
	if depth != 0 {
		return f
	}
	return Fragment{SQL: s[1 : len(s)-1], Args: f.Args}
}
