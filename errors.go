package fragql

import "fmt"

// ArityError indicates a chained comparison operator applied to fewer than
// two arguments. Compilation stops immediately; no partial fragment is
// produced.
type ArityError struct {
	Name  string
	Count int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("operator %q requires at least 2 arguments, got %d", e.Name, e.Count)
}
