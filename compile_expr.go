package fragql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/fragql/internal/ast"
)

// defaultConventions seeds the name registry: comparisons chain, logical
// connectives and arithmetic join infix, and a few keyword forms render
// whitespace-prefixed. Everything else falls through to Prefix.
var defaultConventions = map[string]Convention{
	"=":  BinaryChain,
	"!=": BinaryChain,
	"<>": BinaryChain,
	"<":  BinaryChain,
	">":  BinaryChain,
	"<=": BinaryChain,
	">=": BinaryChain,

	"and":  Infix,
	"or":   Infix,
	"+":    Infix,
	"-":    Infix,
	"*":    Infix,
	"/":    Infix,
	"%":    Infix,
	"||":   Infix,
	"in":   Infix,
	"like": Infix,
	"is":   Infix,
	"over": Infix,

	"not":          Whitespace,
	"distinct":     Whitespace,
	"partition by": Whitespace,
}

// constant renders a literal. Number and Symbol kinds inline their value
// with no args; every other kind binds one placeholder, passing the value
// through the coercion hook.
func (c *Compiler) constant(con *ast.Constant) (Fragment, error) {
	var frag Fragment
	switch con.Kind {
	case ast.Number, ast.Symbol:
		frag = Fragment{SQL: fmt.Sprintf("%v", con.Value)}
	default:
		frag = Fragment{SQL: "?", Args: []any{c.bound(con.Value)}}
	}
	return c.alias(frag, con.Alias), nil
}

// bound applies the coercion hook to a value entering the arg stream.
func (c *Compiler) bound(v any) any {
	if c.coerce == nil {
		return v
	}
	return c.coerce(v)
}

func (c *Compiler) column(col *ast.Column) (Fragment, error) {
	name := c.qualified(col.Schema, col.Table, col.Name)
	return c.alias(Fragment{SQL: name}, col.Alias), nil
}

func (c *Compiler) table(tbl *ast.Table) (Fragment, error) {
	name := c.qualified(tbl.Schema, "", tbl.Name)
	return c.alias(Fragment{SQL: name}, tbl.Alias), nil
}

// qualified joins the present identifier parts with dots, quoting each.
// The * name passes through unquoted.
func (c *Compiler) qualified(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if part == "*" {
			quoted = append(quoted, part)
			continue
		}
		quoted = append(quoted, c.quoter.Quote(part))
	}
	return strings.Join(quoted, ".")
}

// funcCall dispatches a function or operator node by name to its calling
// convention.
func (c *Compiler) funcCall(fn *ast.FuncCall) (Fragment, error) {
	var frag Fragment
	var err error
	switch c.conventions[strings.ToLower(fn.Name)] {
	case BinaryChain:
		frag, err = c.binaryChain(fn)
	case Infix:
		frag, err = c.infix(fn)
	case Whitespace:
		frag, err = c.whitespaceCall(fn)
	default:
		// Prefix, and the explicit default for unregistered names.
		frag, err = c.prefixCall(fn)
	}
	if err != nil {
		return Fragment{}, err
	}
	return c.alias(frag, fn.Alias), nil
}

// binaryChain renders (lhs OP rhs). More than two args expand into
// consecutive overlapping pairs joined with AND, so a chain over [a, b, c]
// means (a OP b) AND (b OP c). Shared args bind once per appearance.
func (c *Compiler) binaryChain(fn *ast.FuncCall) (Fragment, error) {
	if len(fn.Args) < 2 {
		return Fragment{}, &ArityError{Name: fn.Name, Count: len(fn.Args)}
	}
	pairs := make([]any, 0, len(fn.Args)-1)
	for i := 0; i+1 < len(fn.Args); i++ {
		pair, err := c.joinFragments(" "+fn.Name+" ", fn.Args[i], fn.Args[i+1])
		if err != nil {
			return Fragment{}, err
		}
		pairs = append(pairs, pair.Wrap())
	}
	if len(pairs) == 1 {
		return pairs[0].(Fragment), nil
	}
	return c.joinFragments(" AND ", pairs...)
}

// infix joins args with the operator inside one parenthesis pair. A single
// arg compiles to that arg alone, with no operator or parentheses.
func (c *Compiler) infix(fn *ast.FuncCall) (Fragment, error) {
	if len(fn.Args) == 1 {
		return c.expr(fn.Args[0])
	}
	joined, err := c.joinFragments(" "+fn.Name+" ", nodeItems(fn.Args)...)
	if err != nil {
		return Fragment{}, err
	}
	return joined.Wrap(), nil
}

// prefixCall renders name(arg, arg, ...).
func (c *Compiler) prefixCall(fn *ast.FuncCall) (Fragment, error) {
	args, err := c.joinFragments(", ", nodeItems(fn.Args)...)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{SQL: fn.Name + "(" + args.SQL + ")", Args: args.Args}, nil
}

// whitespaceCall renders (NAME arg arg ...) with space-joined args.
func (c *Compiler) whitespaceCall(fn *ast.FuncCall) (Fragment, error) {
	args, err := c.joinFragments(" ", nodeItems(fn.Args)...)
	if err != nil {
		return Fragment{}, err
	}
	name := strings.ToUpper(fn.Name)
	if args.Blank() {
		return Fragment{SQL: "(" + name + ")"}, nil
	}
	return Fragment{SQL: "(" + name + " " + args.SQL + ")", Args: args.Args}, nil
}

func (c *Compiler) exprList(list *ast.ExprList) (Fragment, error) {
	frag, err := c.joinFragments(", ", nodeItems(list.Exprs)...)
	if err != nil {
		return Fragment{}, err
	}
	return c.alias(frag, list.Alias), nil
}

// projection renders a select list, or * when empty.
func (c *Compiler) projection(p *ast.Projection) (Fragment, error) {
	if p == nil || len(p.Exprs) == 0 {
		return Fragment{SQL: "*"}, nil
	}
	return c.joinFragments(", ", nodeItems(p.Exprs)...)
}
