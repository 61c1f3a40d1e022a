// Package integration provides integration tests for fragql using real databases.
package integration

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/fragql"
	sqlitedialect "github.com/zoobzio/fragql/sqlite"
)

// SQLiteDB wraps an in-memory SQLite database for testing.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new in-memory SQLite database.
func NewSQLiteDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}

	return &SQLiteDB{db: db}
}

// Close closes the SQLite database.
func (s *SQLiteDB) Close(t *testing.T) {
	t.Helper()
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			t.Logf("Warning: failed to close database: %v", err)
		}
	}
}

// Exec executes a SQL statement.
func (s *SQLiteDB) Exec(t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := s.db.Exec(sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// QueryRow executes a query and scans a single row.
func (s *SQLiteDB) QueryRow(t *testing.T, sql string, args ...any) *sql.Row {
	t.Helper()
	return s.db.QueryRow(sql, args...)
}

// sqliteSQL compiles a statement for SQLite. The driver takes ? placeholders
// as-is, so no renumbering is needed.
func sqliteSQL(t *testing.T, node fragql.Node) (string, []any) {
	t.Helper()
	frag, err := sqlitedialect.New().Compile(node)
	if err != nil {
		t.Fatalf("Failed to compile: %v", err)
	}
	return frag.SQL, frag.Args
}

func TestSQLiteRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewSQLiteDB(t)
	defer s.Close(t)

	sql, args := sqliteSQL(t, &fragql.CreateTable{
		Table: &fragql.Table{Name: "events"},
		Columns: []fragql.Node{
			&fragql.ColumnDef{Name: "id", Type: "INTEGER", PrimaryKey: true},
			&fragql.ColumnDef{Name: "kind", Type: "TEXT", NotNull: true},
			&fragql.ColumnDef{Name: "payload", Type: "TEXT"},
		},
	})
	s.Exec(t, sql, args...)

	sql, args = sqliteSQL(t, &fragql.Insert{
		Table: &fragql.Table{Name: "events"},
		Rows: []fragql.Row{
			{"id": 1, "kind": "created", "payload": "a"},
			{"id": 2, "kind": "updated", "payload": "b"},
			{"id": 3, "kind": "created", "payload": "c"},
		},
	})
	s.Exec(t, sql, args...)

	sql, args = sqliteSQL(t, &fragql.Select{
		Projection: &fragql.Projection{Exprs: []fragql.Node{
			&fragql.FuncCall{Name: "count", Args: []fragql.Node{&fragql.Column{Name: "*"}}},
		}},
		From: &fragql.From{Sources: []fragql.Node{&fragql.Table{Name: "events"}}},
		Where: &fragql.Where{Cond: &fragql.FuncCall{Name: "=", Args: []fragql.Node{
			&fragql.Column{Name: "kind"},
			&fragql.Constant{Value: "created"},
		}}},
	})

	var count int
	if err := s.QueryRow(t, sql, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to query: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 created events, got %d", count)
	}
}

func TestSQLiteUpdateDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewSQLiteDB(t)
	defer s.Close(t)

	sql, args := sqliteSQL(t, &fragql.CreateTable{
		Table: &fragql.Table{Name: "counters"},
		Columns: []fragql.Node{
			&fragql.ColumnDef{Name: "name", Type: "TEXT", PrimaryKey: true},
			&fragql.ColumnDef{Name: "value", Type: "INTEGER", NotNull: true},
		},
	})
	s.Exec(t, sql, args...)

	sql, args = sqliteSQL(t, &fragql.Insert{
		Table: &fragql.Table{Name: "counters"},
		Rows: []fragql.Row{
			{"name": "hits", "value": 10},
			{"name": "misses", "value": 3},
		},
	})
	s.Exec(t, sql, args...)

	sql, args = sqliteSQL(t, &fragql.Update{
		Table: &fragql.Table{Name: "counters"},
		Exprs: []fragql.Node{
			&fragql.FuncCall{Name: "=", Args: []fragql.Node{
				&fragql.Column{Name: "value"},
				&fragql.FuncCall{Name: "+", Args: []fragql.Node{
					&fragql.Column{Name: "value"},
					&fragql.Constant{Value: 1},
				}},
			}},
		},
		Where: &fragql.Where{Cond: &fragql.FuncCall{Name: "=", Args: []fragql.Node{
			&fragql.Column{Name: "name"},
			&fragql.Constant{Value: "hits"},
		}}},
	})
	s.Exec(t, sql, args...)

	sql, args = sqliteSQL(t, &fragql.Delete{
		Table: &fragql.Table{Name: "counters"},
		Where: &fragql.Where{Cond: &fragql.FuncCall{Name: "=", Args: []fragql.Node{
			&fragql.Column{Name: "name"},
			&fragql.Constant{Value: "misses"},
		}}},
	})
	s.Exec(t, sql, args...)

	sql, args = sqliteSQL(t, &fragql.Select{
		Projection: &fragql.Projection{Exprs: []fragql.Node{&fragql.Column{Name: "value"}}},
		From:       &fragql.From{Sources: []fragql.Node{&fragql.Table{Name: "counters"}}},
	})

	var value int
	if err := s.QueryRow(t, sql, args...).Scan(&value); err != nil {
		t.Fatalf("Failed to query: %v", err)
	}

	if value != 11 {
		t.Errorf("Expected value 11, got %d", value)
	}
}
