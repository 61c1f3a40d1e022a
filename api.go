// Package fragql compiles SQL abstract syntax trees into parameterized
// fragments: SQL text with positional ? placeholders plus the bound
// arguments in placeholder order.
//
// The package compiles trees; it does not build, validate, or execute
// them. Nodes are plain structs constructed by the caller (or by a
// builder layer above this package), and the compiled Fragment is handed
// to a database driver as a prepared-statement invocation.
//
// # Basic Usage
//
//	c := postgres.New()
//
//	frag, err := c.Compile(&fragql.Select{
//		Projection: &fragql.Projection{Exprs: []fragql.Node{
//			&fragql.Column{Name: "id"},
//		}},
//		From: &fragql.From{Sources: []fragql.Node{
//			&fragql.Table{Name: "users"},
//		}},
//		Where: &fragql.Where{Cond: &fragql.FuncCall{
//			Name: "=",
//			Args: []fragql.Node{
//				&fragql.Column{Name: "id"},
//				&fragql.Constant{Value: 1},
//			},
//		}},
//	})
//	// frag.SQL:  SELECT "id" FROM "users" WHERE ("id" = ?)
//	// frag.Args: []any{1}
//
// # Quoting
//
// Identifier quoting is delegated to a Quoter. The postgres, sqlite,
// mysql, and mssql subpackages each provide one; Plain passes names
// through untouched for dialect-neutral output.
//
// # Calling Conventions
//
// Function and operator nodes dispatch by name to a calling convention:
// chained comparisons, infix joining, plain prefix calls, or
// whitespace-prefixed forms like (DISTINCT x). Unregistered names render
// as prefix calls; Register extends the table.
//
// # Output Format
//
// Placeholders are always positional ?. The postgres and mssql
// subpackages provide Rebind to convert a compiled fragment's text to
// $1..$n or @p1..@pn for drivers that need those styles.
package fragql

import "github.com/zoobzio/fragql/internal/ast"

// Node is one tagged element of a statement tree.
// Re-exported from internal/ast for use by consumers.
type Node = ast.Node

// Fragment is compiled SQL text plus its bound args in placeholder order.
type Fragment = ast.Fragment

// Row maps column names to bound values for INSERT and UPDATE.
type Row = ast.Row

// Constant is a literal value with an optional alias.
type Constant = ast.Constant

// ConstantKind classifies how a constant renders.
type ConstantKind = ast.ConstantKind

// Re-export constant kind constants for public API.
const (
	Bind   = ast.Bind
	Number = ast.Number
	Symbol = ast.Symbol
)

// Column is a column reference, optionally qualified by table and schema.
type Column = ast.Column

// Table is a table reference, optionally qualified by schema.
type Table = ast.Table

// Keyword is a bare symbolic identifier rendered through the quoter.
type Keyword = ast.Keyword

// Null renders the SQL NULL keyword.
type Null = ast.Null

// FuncCall is a function or operator application.
type FuncCall = ast.FuncCall

// ExprList is a comma-joined sequence of expressions.
type ExprList = ast.ExprList

// Projection is a select list; it renders * when empty.
type Projection = ast.Projection

// From lists statement sources followed by join clauses.
type From = ast.From

// Join is one join clause inside a From.
type Join = ast.Join

// JoinType represents the join variant keyword.
type JoinType = ast.JoinType

// Re-export join type constants for public API.
const (
	CrossJoin = ast.CrossJoin
	InnerJoin = ast.InnerJoin
	LeftJoin  = ast.LeftJoin
	RightJoin = ast.RightJoin
)

// JoinHow selects how the join condition attaches.
type JoinHow = ast.JoinHow

// Re-export join condition constants for public API.
const (
	JoinOn    = ast.JoinOn
	JoinUsing = ast.JoinUsing
)

// Where wraps a boolean expression as a WHERE predicate.
type Where = ast.Where

// GroupBy renders GROUP BY over its expressions.
type GroupBy = ast.GroupBy

// Having wraps a boolean expression as a HAVING predicate.
type Having = ast.Having

// OrderBy renders ORDER BY with optional direction and nulls suffixes.
type OrderBy = ast.OrderBy

// Direction represents sort direction.
type Direction = ast.Direction

// Re-export direction constants for public API.
const (
	ASC  = ast.ASC
	DESC = ast.DESC
)

// NullsOrdering represents NULL ordering in ORDER BY.
type NullsOrdering = ast.NullsOrdering

// Re-export nulls ordering constants for public API.
const (
	NullsFirst = ast.NullsFirst
	NullsLast  = ast.NullsLast
)

// Limit renders LIMIT; a non-numeric count renders LIMIT ALL.
type Limit = ast.Limit

// Offset renders OFFSET; a non-numeric start renders OFFSET 0.
type Offset = ast.Offset

// Like clones a table definition inside CREATE TABLE.
type Like = ast.Like

// Select is a select statement.
type Select = ast.Select

// Insert is an insert statement.
type Insert = ast.Insert

// Update is an update statement.
type Update = ast.Update

// Delete is a delete statement.
type Delete = ast.Delete

// ColumnDef declares one column inside CREATE TABLE.
type ColumnDef = ast.ColumnDef

// CreateTable is a create-table statement.
type CreateTable = ast.CreateTable

// DropTable drops one or more tables.
type DropTable = ast.DropTable

// Truncate empties one or more tables.
type Truncate = ast.Truncate

// Copy is a copy statement.
type Copy = ast.Copy

// CopySource is the FROM side of COPY.
type CopySource = ast.CopySource

// CopyTarget is the TO side of COPY.
type CopyTarget = ast.CopyTarget

// SetOp prefixes a statement with a set-operation keyword.
type SetOp = ast.SetOp

// SetOpKind represents SQL set operations.
type SetOpKind = ast.SetOpKind

// Re-export set operation constants for public API.
const (
	SetUnion     = ast.SetUnion
	SetIntersect = ast.SetIntersect
	SetExcept    = ast.SetExcept
)
