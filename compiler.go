package fragql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/fragql/internal/ast"
)

// Convention selects how a function or operator name renders.
type Convention int

const (
	// Prefix renders name(arg, arg). The default for unregistered names.
	Prefix Convention = iota
	// BinaryChain renders (lhs OP rhs); more than two args expand into
	// consecutive AND-joined pairs. Fewer than two args is an error.
	BinaryChain
	// Infix joins two or more args with the operator inside one
	// parenthesis pair; a single arg compiles to that arg alone.
	Infix
	// Whitespace renders (NAME arg arg) with space-joined args and the
	// name upper-cased.
	Whitespace
)

// CoerceFunc adjusts a bound value before it joins a fragment's args. It
// is invoked once per bound constant and row value.
type CoerceFunc func(any) any

// Compiler turns statement trees into fragments. Configure with Register
// and WithCoercer before the first Compile; a configured Compiler is safe
// for concurrent use.
type Compiler struct {
	quoter      Quoter
	coerce      CoerceFunc
	conventions map[string]Convention
}

// New creates a Compiler that quotes identifiers through quoter. A nil
// quoter leaves identifiers unquoted.
func New(quoter Quoter) *Compiler {
	if quoter == nil {
		quoter = Plain
	}
	c := &Compiler{
		quoter:      quoter,
		conventions: make(map[string]Convention, len(defaultConventions)),
	}
	for name, conv := range defaultConventions {
		c.conventions[name] = conv
	}
	return c
}

// Register maps a function or operator name to a calling convention,
// replacing any existing mapping. Names are matched case-insensitively.
// Returns the compiler for chaining.
func (c *Compiler) Register(name string, conv Convention) *Compiler {
	c.conventions[strings.ToLower(name)] = conv
	return c
}

// WithCoercer sets the hook applied to every bound value. The default is
// the identity transform. Returns the compiler for chaining.
func (c *Compiler) WithCoercer(fn CoerceFunc) *Compiler {
	c.coerce = fn
	return c
}

// Compile renders a statement or expression node into one fragment. It
// either fully succeeds or returns an error; there is no partial result.
func (c *Compiler) Compile(node Node) (Fragment, error) {
	if node == nil {
		return Fragment{}, fmt.Errorf("cannot compile nil node")
	}
	return c.compile(node)
}

// compile dispatches on the node's concrete type.
func (c *Compiler) compile(node Node) (Fragment, error) {
	switch n := node.(type) {
	case *ast.Constant:
		return c.constant(n)
	case *ast.Column:
		return c.column(n)
	case *ast.Table:
		return c.table(n)
	case *ast.Keyword:
		return Fragment{SQL: c.quoter.Quote(n.Form)}, nil
	case *ast.Null:
		return Fragment{SQL: "NULL"}, nil
	case *ast.FuncCall:
		return c.funcCall(n)
	case *ast.ExprList:
		return c.exprList(n)
	case *ast.Projection:
		return c.projection(n)
	case *ast.From:
		return c.fromClause(n)
	case *ast.Join:
		return c.joinClause(n)
	case *ast.Where:
		return c.whereClause(n)
	case *ast.GroupBy:
		return c.groupByClause(n)
	case *ast.Having:
		return c.havingClause(n)
	case *ast.OrderBy:
		return c.orderByClause(n)
	case *ast.Limit:
		return c.limitClause(n)
	case *ast.Offset:
		return c.offsetClause(n)
	case *ast.Like:
		return c.likeClause(n)
	case *ast.ColumnDef:
		return c.columnDef(n)
	case *ast.Select:
		return c.selectStmt(n)
	case *ast.Insert:
		return c.insertStmt(n)
	case *ast.Update:
		return c.updateStmt(n)
	case *ast.Delete:
		return c.deleteStmt(n)
	case *ast.CreateTable:
		return c.createTable(n)
	case *ast.DropTable:
		return c.dropTable(n)
	case *ast.Truncate:
		return c.truncateStmt(n)
	case *ast.Copy:
		return c.copyStmt(n)
	case *ast.SetOp:
		return c.setOp(n)
	default:
		return Fragment{}, fmt.Errorf("unknown node type: %T", node)
	}
}

// expr compiles a node in expression position. A select statement used as
// an expression is parenthesized so it can stand as a scalar value.
func (c *Compiler) expr(node Node) (Fragment, error) {
	frag, err := c.compile(node)
	if err != nil {
		return Fragment{}, err
	}
	if _, ok := node.(*ast.Select); ok {
		return frag.Wrap(), nil
	}
	return frag, nil
}

// joinFragments compiles any raw nodes among items, drops fragments whose
// text is blank, and joins the survivors with sep. Args concatenate in
// encounter order; sources are never reordered.
func (c *Compiler) joinFragments(sep string, items ...any) (Fragment, error) {
	var texts []string
	var args []any
	for _, item := range items {
		var frag Fragment
		switch v := item.(type) {
		case nil:
			continue
		case Fragment:
			frag = v
		case Node:
			compiled, err := c.expr(v)
			if err != nil {
				return Fragment{}, err
			}
			frag = compiled
		default:
			return Fragment{}, fmt.Errorf("cannot join %T into a fragment", item)
		}
		if frag.Blank() {
			continue
		}
		texts = append(texts, frag.SQL)
		args = append(args, frag.Args...)
	}
	return Fragment{SQL: strings.Join(texts, sep), Args: args}, nil
}

// compose assembles statement clauses: space-joined with nils and blank
// fragments dropped, so absent clauses contribute nothing.
func (c *Compiler) compose(items ...any) (Fragment, error) {
	return c.joinFragments(" ", items...)
}

// alias appends AS <quoted-alias> when as is set. Blank fragments stay
// blank.
func (c *Compiler) alias(frag Fragment, as string) Fragment {
	if as == "" || frag.Blank() {
		return frag
	}
	return Fragment{SQL: frag.SQL + " AS " + c.quoter.Quote(as), Args: frag.Args}
}

// keyworded prefixes body with a clause keyword, dropping the keyword
// when the body renders blank.
func keyworded(keyword string, body Fragment) Fragment {
	if body.Blank() {
		return Fragment{}
	}
	return Fragment{SQL: keyword + " " + body.SQL, Args: body.Args}
}

// nodeItems widens a node slice for joinFragments.
func nodeItems(nodes []Node) []any {
	items := make([]any, len(nodes))
	for i, n := range nodes {
		items[i] = n
	}
	return items
}

// placeholders returns n comma-joined positional markers.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}

// numberOr formats v when it is a Go numeric, else returns fallback.
func numberOr(v any, fallback string) string {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", v)
	}
	return fallback
}
