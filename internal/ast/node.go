package ast

// Node is one tagged element of a statement tree. The set of variants is
// closed; the compiler dispatches on the concrete type.
type Node interface {
	node()
}

// ConstantKind classifies how a constant renders.
type ConstantKind string

const (
	// Bind renders a positional placeholder and contributes one bound arg.
	// It is the zero kind: a constant with no declared kind binds.
	Bind ConstantKind = ""
	// Number inlines the value into the SQL text as a numeric literal.
	Number ConstantKind = "NUMBER"
	// Symbol inlines the value as a raw SQL token, unquoted.
	Symbol ConstantKind = "SYMBOL"
)

// Constant is a literal value with an optional alias.
type Constant struct {
	Value any
	Kind  ConstantKind
	Alias string
}

// Column is a column reference, optionally qualified by table and schema.
type Column struct {
	Schema string
	Table  string
	Name   string
	Alias  string
}

// Table is a table reference, optionally qualified by schema.
type Table struct {
	Schema string
	Name   string
	Alias  string
}

// Keyword is a bare symbolic identifier rendered through the quoter.
type Keyword struct {
	Form string
}

// Null renders the SQL NULL keyword.
type Null struct{}

// FuncCall is a function or operator application. Name selects the calling
// convention and need not be alphabetic ("=", "||", "partition by").
type FuncCall struct {
	Name  string
	Args  []Node
	Alias string
}

// ExprList is a comma-joined sequence of expressions.
type ExprList struct {
	Exprs []Node
	Alias string
}

// Projection is a select list. It renders * when empty.
type Projection struct {
	Exprs []Node
}

// From lists statement sources followed by join clauses.
type From struct {
	Sources []Node
	Joins   []*Join
}

// JoinType represents the join variant keyword. The zero value renders a
// plain JOIN.
type JoinType string

const (
	CrossJoin JoinType = "CROSS"
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
)

// JoinHow selects how the join condition attaches.
type JoinHow string

const (
	// JoinOn renders ON <condition>. The zero JoinHow also renders ON.
	JoinOn JoinHow = "ON"
	// JoinUsing renders USING (<condition>).
	JoinUsing JoinHow = "USING"
)

// Join is one join clause inside a From.
type Join struct {
	Source Node
	Cond   Node
	How    JoinHow
	Type   JoinType
	Outer  bool
}

// Where wraps a boolean expression as a WHERE predicate.
type Where struct {
	Cond Node
}

// GroupBy renders GROUP BY over its expressions.
type GroupBy struct {
	Exprs Node
}

// Having wraps a boolean expression as a HAVING predicate.
type Having struct {
	Cond Node
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// NullsOrdering represents NULL ordering in ORDER BY.
type NullsOrdering string

const (
	NullsFirst NullsOrdering = "FIRST"
	NullsLast  NullsOrdering = "LAST"
)

// OrderBy renders ORDER BY with optional direction and nulls suffixes.
type OrderBy struct {
	Exprs     Node
	Direction Direction
	Nulls     NullsOrdering
}

// Limit renders LIMIT. A non-numeric Count renders LIMIT ALL.
type Limit struct {
	Count any
}

// Offset renders OFFSET. A non-numeric Start renders OFFSET 0.
type Offset struct {
	Start any
}

// Like clones a table definition inside CREATE TABLE, with upper-cased
// INCLUDING/EXCLUDING options.
type Like struct {
	Table     Node
	Including []Keyword
	Excluding []Keyword
}

// Select is a select statement. Alias is consumed only when the select
// appears as a FROM source, where an alias is mandatory.
type Select struct {
	Projection *Projection
	From       *From
	Where      *Where
	GroupBy    *GroupBy
	Having     *Having
	OrderBy    *OrderBy
	Limit      *Limit
	Offset     *Offset
	Set        *SetOp
	Alias      string
}

// Row maps column names to bound values for INSERT and UPDATE.
type Row map[string]any

// Insert is an insert statement: literal rows, a spliced query, or
// DEFAULT VALUES. Columns renders only with Query; literal rows derive
// their column list from the first row's sorted keys.
type Insert struct {
	Table         *Table
	Columns       []Node
	Rows          []Row
	Query         *Select
	Returning     *Projection
	DefaultValues bool
}

// Update is an update statement. Assignments come from Row (col = ?) or
// from Exprs, a list of precompiled assignment expressions.
type Update struct {
	Table     *Table
	Exprs     []Node
	Row       Row
	From      *From
	Where     *Where
	Returning *Projection
}

// Delete is a delete statement.
type Delete struct {
	Table     *Table
	Where     *Where
	Returning *Projection
}

// ColumnDef declares one column inside CREATE TABLE.
type ColumnDef struct {
	Name       string
	Type       string
	Length     int
	Default    Node
	PrimaryKey bool
	NotNull    bool
	Unique     bool
}

// CreateTable is a create-table statement. Columns hold ColumnDef or
// column nodes in declaration order; Like clones another table instead.
type CreateTable struct {
	Table       *Table
	Columns     []Node
	Inherits    []Node
	Like        *Like
	IfNotExists bool
	Temporary   bool
}

// DropTable drops one or more tables.
type DropTable struct {
	Tables   []Node
	IfExists bool
	Cascade  bool
	Restrict bool
}

// Truncate empties one or more tables.
type Truncate struct {
	Tables           []Node
	RestartIdentity  bool
	ContinueIdentity bool
	Cascade          bool
	Restrict         bool
}

// CopySource is the FROM side of COPY: a filename bound as a parameter,
// or the STDIN marker.
type CopySource struct {
	Filename string
	Stdin    bool
}

// CopyTarget is the TO side of COPY: a filename bound as a parameter, or
// the STDOUT marker.
type CopyTarget struct {
	Filename string
	Stdout   bool
}

// Copy is a copy statement.
type Copy struct {
	Table   *Table
	Columns []Node
	From    *CopySource
	To      *CopyTarget
}

// SetOpKind represents SQL set operations.
type SetOpKind string

const (
	SetUnion     SetOpKind = "UNION"
	SetIntersect SetOpKind = "INTERSECT"
	SetExcept    SetOpKind = "EXCEPT"
)

// SetOp prefixes a statement with a set-operation keyword.
type SetOp struct {
	Kind SetOpKind
	Stmt Node
	All  bool
}

// Tag the closed set of node variants.
func (*Constant) node()    {}
func (*Column) node()      {}
func (*Table) node()       {}
func (*Keyword) node()     {}
func (*Null) node()        {}
func (*FuncCall) node()    {}
func (*ExprList) node()    {}
func (*Projection) node()  {}
func (*From) node()        {}
func (*Join) node()        {}
func (*Where) node()       {}
func (*GroupBy) node()     {}
func (*Having) node()      {}
func (*OrderBy) node()     {}
func (*Limit) node()       {}
func (*Offset) node()      {}
func (*Like) node()        {}
func (*Select) node()      {}
func (*Insert) node()      {}
func (*Update) node()      {}
func (*Delete) node()      {}
func (*ColumnDef) node()   {}
func (*CreateTable) node() {}
func (*DropTable) node()   {}
func (*Truncate) node()    {}
func (*Copy) node()        {}
func (*SetOp) node()       {}
