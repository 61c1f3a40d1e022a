package fragql

import (
	"sort"
	"strings"

	"github.com/zoobzio/fragql/internal/ast"
)

// selectStmt assembles SELECT clauses in their fixed order.
func (c *Compiler) selectStmt(sel *ast.Select) (Fragment, error) {
	proj, err := c.projection(sel.Projection)
	if err != nil {
		return Fragment{}, err
	}
	from, err := c.fromClause(sel.From)
	if err != nil {
		return Fragment{}, err
	}
	where, err := c.whereClause(sel.Where)
	if err != nil {
		return Fragment{}, err
	}
	groupBy, err := c.groupByClause(sel.GroupBy)
	if err != nil {
		return Fragment{}, err
	}
	having, err := c.havingClause(sel.Having)
	if err != nil {
		return Fragment{}, err
	}
	orderBy, err := c.orderByClause(sel.OrderBy)
	if err != nil {
		return Fragment{}, err
	}
	limit, err := c.limitClause(sel.Limit)
	if err != nil {
		return Fragment{}, err
	}
	offset, err := c.offsetClause(sel.Offset)
	if err != nil {
		return Fragment{}, err
	}
	var set Fragment
	if sel.Set != nil {
		set, err = c.setOp(sel.Set)
		if err != nil {
			return Fragment{}, err
		}
	}
	return c.compose(Fragment{SQL: "SELECT"}, proj, from, where, groupBy, having, orderBy, limit, offset, set)
}

// insertStmt renders literal rows as placeholder tuples, splices a query,
// or emits DEFAULT VALUES. Row args append row by row, each row's columns
// sorted.
func (c *Compiler) insertStmt(ins *ast.Insert) (Fragment, error) {
	table, err := c.compile(ins.Table)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "INSERT INTO"}, table}
	switch {
	case ins.DefaultValues:
		items = append(items, Fragment{SQL: "DEFAULT VALUES"})
	case ins.Query != nil:
		if len(ins.Columns) > 0 {
			cols, err := c.joinFragments(", ", nodeItems(ins.Columns)...)
			if err != nil {
				return Fragment{}, err
			}
			items = append(items, cols.Wrap())
		}
		query, err := c.compile(ins.Query)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, query)
	case len(ins.Rows) > 0:
		cols := rowColumns(ins.Rows)
		quoted := make([]string, len(cols))
		for i, col := range cols {
			quoted[i] = c.quoter.Quote(col)
		}
		items = append(items, Fragment{SQL: "(" + strings.Join(quoted, ", ") + ")"})
		tuple := "(" + placeholders(len(cols)) + ")"
		tuples := make([]string, len(ins.Rows))
		var args []any
		for i, row := range ins.Rows {
			tuples[i] = tuple
			for _, col := range cols {
				args = append(args, c.bound(row[col]))
			}
		}
		items = append(items, Fragment{SQL: "VALUES " + strings.Join(tuples, ", "), Args: args})
	}
	if ins.Returning != nil {
		ret, err := c.projection(ins.Returning)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, keyworded("RETURNING", ret))
	}
	return c.compose(items...)
}

// rowColumns returns the first row's column names, sorted for stable
// output.
func rowColumns(rows []ast.Row) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// updateStmt assembles UPDATE; args follow the rendered clause order.
func (c *Compiler) updateStmt(up *ast.Update) (Fragment, error) {
	table, err := c.compile(up.Table)
	if err != nil {
		return Fragment{}, err
	}
	set, err := c.setClause(up)
	if err != nil {
		return Fragment{}, err
	}
	from, err := c.fromClause(up.From)
	if err != nil {
		return Fragment{}, err
	}
	where, err := c.whereClause(up.Where)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "UPDATE"}, table, set, from, where}
	if up.Returning != nil {
		ret, err := c.projection(up.Returning)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, keyworded("RETURNING", ret))
	}
	return c.compose(items...)
}

// setClause renders SET either as col = ? assignments bound from a row
// map (sorted keys) or as a comma list of precompiled assignment
// expressions, each stripped of one outer parenthesis pair.
func (c *Compiler) setClause(up *ast.Update) (Fragment, error) {
	if len(up.Row) > 0 {
		cols := make([]string, 0, len(up.Row))
		for col := range up.Row {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		parts := make([]string, len(cols))
		args := make([]any, len(cols))
		for i, col := range cols {
			parts[i] = c.quoter.Quote(col) + " = ?"
			args[i] = c.bound(up.Row[col])
		}
		return Fragment{SQL: "SET " + strings.Join(parts, ", "), Args: args}, nil
	}
	if len(up.Exprs) > 0 {
		exprs := make([]any, len(up.Exprs))
		for i, e := range up.Exprs {
			frag, err := c.expr(e)
			if err != nil {
				return Fragment{}, err
			}
			exprs[i] = frag.Unwrap()
		}
		list, err := c.joinFragments(", ", exprs...)
		if err != nil {
			return Fragment{}, err
		}
		return keyworded("SET", list), nil
	}
	return Fragment{}, nil
}

func (c *Compiler) deleteStmt(del *ast.Delete) (Fragment, error) {
	table, err := c.compile(del.Table)
	if err != nil {
		return Fragment{}, err
	}
	where, err := c.whereClause(del.Where)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "DELETE FROM"}, table, where}
	if del.Returning != nil {
		ret, err := c.projection(del.Returning)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, keyworded("RETURNING", ret))
	}
	return c.compose(items...)
}

// createTable renders the declared column list or a LIKE clone body, with
// the optional modifiers in their fixed positions.
func (c *Compiler) createTable(ct *ast.CreateTable) (Fragment, error) {
	table, err := c.compile(ct.Table)
	if err != nil {
		return Fragment{}, err
	}
	head := "CREATE TABLE"
	if ct.Temporary {
		head = "CREATE TEMPORARY TABLE"
	}
	items := []any{Fragment{SQL: head}}
	if ct.IfNotExists {
		items = append(items, Fragment{SQL: "IF NOT EXISTS"})
	}
	items = append(items, table)
	var body Fragment
	if ct.Like != nil {
		body, err = c.likeClause(ct.Like)
	} else {
		body, err = c.joinFragments(", ", nodeItems(ct.Columns)...)
	}
	if err != nil {
		return Fragment{}, err
	}
	if !body.Blank() {
		items = append(items, body.Wrap())
	}
	if len(ct.Inherits) > 0 {
		parents, err := c.joinFragments(", ", nodeItems(ct.Inherits)...)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, Fragment{SQL: "INHERITS"}, parents.Wrap())
	}
	return c.compose(items...)
}

func (c *Compiler) dropTable(dt *ast.DropTable) (Fragment, error) {
	tables, err := c.joinFragments(", ", nodeItems(dt.Tables)...)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "DROP TABLE"}}
	if dt.IfExists {
		items = append(items, Fragment{SQL: "IF EXISTS"})
	}
	items = append(items, tables)
	if dt.Cascade {
		items = append(items, Fragment{SQL: "CASCADE"})
	}
	if dt.Restrict {
		items = append(items, Fragment{SQL: "RESTRICT"})
	}
	return c.compose(items...)
}

func (c *Compiler) truncateStmt(tr *ast.Truncate) (Fragment, error) {
	tables, err := c.joinFragments(", ", nodeItems(tr.Tables)...)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "TRUNCATE TABLE"}, tables}
	if tr.RestartIdentity {
		items = append(items, Fragment{SQL: "RESTART IDENTITY"})
	}
	if tr.ContinueIdentity {
		items = append(items, Fragment{SQL: "CONTINUE IDENTITY"})
	}
	if tr.Cascade {
		items = append(items, Fragment{SQL: "CASCADE"})
	}
	if tr.Restrict {
		items = append(items, Fragment{SQL: "RESTRICT"})
	}
	return c.compose(items...)
}

// copyStmt renders COPY. A filename source or target binds one arg; the
// STDIN and STDOUT markers bind none.
func (c *Compiler) copyStmt(cp *ast.Copy) (Fragment, error) {
	table, err := c.compile(cp.Table)
	if err != nil {
		return Fragment{}, err
	}
	items := []any{Fragment{SQL: "COPY"}, table}
	if len(cp.Columns) > 0 {
		cols, err := c.joinFragments(", ", nodeItems(cp.Columns)...)
		if err != nil {
			return Fragment{}, err
		}
		items = append(items, cols.Wrap())
	}
	if cp.From != nil {
		if cp.From.Stdin {
			items = append(items, Fragment{SQL: "FROM STDIN"})
		} else {
			items = append(items, Fragment{SQL: "FROM ?", Args: []any{cp.From.Filename}})
		}
	}
	if cp.To != nil {
		if cp.To.Stdout {
			items = append(items, Fragment{SQL: "TO STDOUT"})
		} else {
			items = append(items, Fragment{SQL: "TO ?", Args: []any{cp.To.Filename}})
		}
	}
	return c.compose(items...)
}

// setOp prefixes the inner statement's text with the set-operation
// keyword, passing its args through unchanged. The inner statement
// compiles through expression position and is then unwrapped, so a
// subselect splices bare.
func (c *Compiler) setOp(op *ast.SetOp) (Fragment, error) {
	stmt, err := c.expr(op.Stmt)
	if err != nil {
		return Fragment{}, err
	}
	stmt = stmt.Unwrap()
	head := string(op.Kind)
	if op.All {
		head += " ALL"
	}
	return Fragment{SQL: head + " " + stmt.SQL, Args: stmt.Args}, nil
}
