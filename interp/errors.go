package interp

import (
	"fmt"

	"github.com/Vercily/js-tracker/value"
)

// Exception is a JS-level thrown value, propagated with Go's panic/recover
// the way go/simplejs's JSException does — it's the interpreter's "host
// exception mechanism" (spec.md §4.7). Only TryStatement ever recovers one;
// everywhere else it's left to propagate to the caller of ParseAst
// (spec.md §7).
type Exception struct {
	Value value.Value
}

func (e *Exception) Error() string {
	return fmt.Sprintf("uncaught exception: %s", value.ToString(e.Value))
}

// StructuralError marks a fatal programmer error — an unrecognized node
// kind or a malformed reference — as opposed to a JS-level Exception
// (spec.md §7). It is never caught by TryStatement.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string { return e.Message }

func fail(format string, args ...interface{}) {
	panic(&StructuralError{Message: fmt.Sprintf(format, args...)})
}

// throwValue raises v as a user-level JS exception.
func throwValue(v value.Value) {
	panic(&Exception{Value: v})
}
