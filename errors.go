package genlower

import "fmt"

// InvariantError reports a misuse of the CodeGenerator API by its caller —
// the wrong block kind passed to endBreakBlock, an exception block asked to
// advance past Done, closing a block that was never opened. These are bugs
// in the visitor driving the core, not in the user's source, so they panic
// rather than returning an error value.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("genlower: %s: %s", e.Op, e.Message)
}

func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Message: fmt.Sprintf(format, args...)})
}
