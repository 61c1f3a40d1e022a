package fragql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/fragql/internal/ast"
)

// fromClause renders FROM with comma-joined sources, then any joins.
func (c *Compiler) fromClause(from *ast.From) (Fragment, error) {
	if from == nil || (len(from.Sources) == 0 && len(from.Joins) == 0) {
		return Fragment{}, nil
	}
	sources := make([]any, len(from.Sources))
	for i, src := range from.Sources {
		frag, err := c.fromSource(src)
		if err != nil {
			return Fragment{}, err
		}
		sources[i] = frag
	}
	list, err := c.joinFragments(", ", sources...)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "FROM"}, list}
	for _, join := range from.Joins {
		frag, err := c.joinClause(join)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, frag)
	}
	return c.compose(items...)
}

// fromSource compiles one FROM or JOIN source. A subselect is
// parenthesized and must carry an alias to be addressable.
func (c *Compiler) fromSource(src Node) (Fragment, error) {
	sel, ok := src.(*ast.Select)
	if !ok {
		return c.compile(src)
	}
	if sel.Alias == "" {
		return Fragment{}, fmt.Errorf("subselect in FROM requires an alias")
	}
	frag, err := c.compile(sel)
	if err != nil {
		return Fragment{}, err
	}
	return c.alias(frag.Wrap(), sel.Alias), nil
}

// joinClause renders one join: the variant keywords, the source, then the
// condition attached with ON or USING. USING parenthesizes its condition.
func (c *Compiler) joinClause(join *ast.Join) (Fragment, error) {
	if join == nil {
		return Fragment{}, nil
	}
	source, err := c.fromSource(join.Source)
	if err != nil {
		return Fragment{}, err
	}
	cond, err := c.expr(join.Cond)
	if err != nil {
		return Fragment{}, err
	}
	how := "ON"
	if join.How == ast.JoinUsing {
		how = "USING"
		cond = cond.Wrap()
	}
	var head []string
	if join.Type != "" {
		head = append(head, string(join.Type))
	}
	if join.Outer {
		head = append(head, "OUTER")
	}
	head = append(head, "JOIN")
	return c.compose(Fragment{SQL: strings.Join(head, " ")}, source, Fragment{SQL: how}, cond)
}

func (c *Compiler) whereClause(where *ast.Where) (Fragment, error) {
	if where == nil || where.Cond == nil {
		return Fragment{}, nil
	}
	pred, err := c.expr(where.Cond)
	if err != nil {
		return Fragment{}, err
	}
	return keyworded("WHERE", pred), nil
}

func (c *Compiler) groupByClause(gb *ast.GroupBy) (Fragment, error) {
	if gb == nil || gb.Exprs == nil {
		return Fragment{}, nil
	}
	exprs, err := c.expr(gb.Exprs)
	if err != nil {
		return Fragment{}, err
	}
	return keyworded("GROUP BY", exprs), nil
}

func (c *Compiler) havingClause(having *ast.Having) (Fragment, error) {
	if having == nil || having.Cond == nil {
		return Fragment{}, nil
	}
	pred, err := c.expr(having.Cond)
	if err != nil {
		return Fragment{}, err
	}
	return keyworded("HAVING", pred), nil
}

// orderByClause renders ORDER BY, appending direction and nulls ordering
// only when specified.
func (c *Compiler) orderByClause(ob *ast.OrderBy) (Fragment, error) {
	if ob == nil || ob.Exprs == nil {
		return Fragment{}, nil
	}
	exprs, err := c.expr(ob.Exprs)
	if err != nil {
		return Fragment{}, err
	}
	frag := keyworded("ORDER BY", exprs)
	if frag.Blank() {
		return frag, nil
	}
	if ob.Direction != "" {
		frag.SQL += " " + string(ob.Direction)
	}
	if ob.Nulls != "" {
		frag.SQL += " NULLS " + string(ob.Nulls)
	}
	return frag, nil
}

func (c *Compiler) limitClause(limit *ast.Limit) (Fragment, error) {
	if limit == nil {
		return Fragment{}, nil
	}
	return Fragment{SQL: "LIMIT " + numberOr(limit.Count, "ALL")}, nil
}

func (c *Compiler) offsetClause(offset *ast.Offset) (Fragment, error) {
	if offset == nil {
		return Fragment{}, nil
	}
	return Fragment{SQL: "OFFSET " + numberOr(offset.Start, "0")}, nil
}

// likeClause renders a table clone source for CREATE TABLE, with
// upper-cased INCLUDING/EXCLUDING options.
func (c *Compiler) likeClause(like *ast.Like) (Fragment, error) {
	if like == nil || like.Table == nil {
		return Fragment{}, nil
	}
	table, err := c.expr(like.Table)
	if err != nil {
		return Fragment{}, err
	}
	frag := keyworded("LIKE", table)
	if opts := keywordList(like.Including); opts != "" {
		frag.SQL += " INCLUDING " + opts
	}
	if opts := keywordList(like.Excluding); opts != "" {
		frag.SQL += " EXCLUDING " + opts
	}
	return frag, nil
}

// keywordList upper-cases and space-joins clone options.
func keywordList(opts []ast.Keyword) string {
	if len(opts) == 0 {
		return ""
	}
	forms := make([]string, len(opts))
	for i, opt := range opts {
		forms[i] = strings.ToUpper(opt.Form)
	}
	return strings.Join(forms, " ")
}

// columnDef renders one column declaration. A Default expression's args
// flow into the fragment like any other.
func (c *Compiler) columnDef(def *ast.ColumnDef) (Fragment, error) {
	var b strings.Builder
	b.WriteString(c.quoter.Quote(def.Name))
	if def.Type != "" {
		b.WriteString(" ")
		b.WriteString(def.Type)
	}
	if def.Length > 0 {
		fmt.Fprintf(&b, "(%d)", def.Length)
	}
	if def.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if def.NotNull {
		b.WriteString(" NOT NULL")
	}
	if def.Unique {
		b.WriteString(" UNIQUE")
	}
	frag := Fragment{}
	if def.Default != nil {
		dflt, err := c.expr(def.Default)
		if err != nil {
			return Fragment{}, err
		}
		b.WriteString(" DEFAULT ")
		b.WriteString(dflt.SQL)
		frag.Args = dflt.Args
	}
	frag.SQL = b.String()
	return frag, nil
}
