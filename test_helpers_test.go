package fragql

import (
	"reflect"
	"strings"
	"testing"
)

// mustCompile compiles node, failing the test on error.
func mustCompile(t *testing.T, c *Compiler, node Node) Fragment {
	t.Helper()
	frag, err := c.Compile(node)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return frag
}

// assertFragment checks the fragment's text and args, and that the
// placeholder count matches the arg count.
func assertFragment(t *testing.T, frag Fragment, sql string, args ...any) {
	t.Helper()
	if frag.SQL != sql {
		t.Errorf("SQL = %q, want %q", frag.SQL, sql)
	}
	if len(args) == 0 {
		if len(frag.Args) != 0 {
			t.Errorf("Args = %v, want none", frag.Args)
		}
	} else if !reflect.DeepEqual(frag.Args, args) {
		t.Errorf("Args = %v, want %v", frag.Args, args)
	}
	if n := strings.Count(frag.SQL, "?"); n != len(frag.Args) {
		t.Errorf("placeholder count = %d, arg count = %d", n, len(frag.Args))
	}
}
