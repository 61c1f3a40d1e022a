// Package testing provides test utilities for fragql.
package testing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/fragql"
)

// SampleSelect builds a representative SELECT over a users table with a
// bound WHERE comparison. Useful as a ready-made compile target.
func SampleSelect() *fragql.Select {
	return &fragql.Select{
		Projection: &fragql.Projection{Exprs: []fragql.Node{
			&fragql.Column{Name: "id"},
			&fragql.Column{Name: "username"},
			&fragql.Column{Name: "email"},
		}},
		From: &fragql.From{Sources: []fragql.Node{&fragql.Table{Name: "users"}}},
		Where: &fragql.Where{Cond: &fragql.FuncCall{
			Name: "and",
			Args: []fragql.Node{
				&fragql.FuncCall{Name: ">", Args: []fragql.Node{
					&fragql.Column{Name: "age"},
					&fragql.Constant{Value: 18},
				}},
				&fragql.FuncCall{Name: "=", Args: []fragql.Node{
					&fragql.Column{Name: "active"},
					&fragql.Constant{Value: true},
				}},
			},
		}},
		OrderBy: &fragql.OrderBy{Exprs: &fragql.Column{Name: "username"}, Direction: fragql.ASC},
		Limit:   &fragql.Limit{Count: 50},
	}
}

// SampleInsert builds a representative two-row INSERT into a users table.
func SampleInsert() *fragql.Insert {
	return &fragql.Insert{
		Table: &fragql.Table{Name: "users"},
		Rows: []fragql.Row{
			{"username": "alice", "email": "alice@example.com", "age": 30},
			{"username": "bob", "email": "bob@example.com", "age": 25},
		},
	}
}

// SampleUpdate builds a representative UPDATE against a users table.
func SampleUpdate() *fragql.Update {
	return &fragql.Update{
		Table: &fragql.Table{Name: "users"},
		Row:   fragql.Row{"email": "new@example.com"},
		Where: &fragql.Where{Cond: &fragql.FuncCall{
			Name: "=",
			Args: []fragql.Node{&fragql.Column{Name: "id"}, &fragql.Constant{Value: 1}},
		}},
	}
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertArgs checks that a fragment's args match expected values in order.
func AssertArgs(t *testing.T, expected []any, actual []any) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Args mismatch:\nExpected: %v\nActual:   %v", expected, actual)
	}
}

// AssertFragment checks a fragment's SQL text and args together.
func AssertFragment(t *testing.T, frag fragql.Fragment, sql string, args ...any) {
	t.Helper()
	AssertSQL(t, sql, frag.SQL)
	AssertArgs(t, args, frag.Args)
	AssertPlaceholders(t, frag)
}

// AssertPlaceholders checks that a fragment carries exactly one arg per
// ? placeholder in its SQL.
func AssertPlaceholders(t *testing.T, frag fragql.Fragment) {
	t.Helper()
	if n := strings.Count(frag.SQL, "?"); n != len(frag.Args) {
		t.Errorf("Placeholder count mismatch: %d placeholders, %d args\nSQL: %s\nArgs: %v",
			n, len(frag.Args), frag.SQL, frag.Args)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}
