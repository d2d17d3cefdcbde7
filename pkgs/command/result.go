package command

import (
	"fmt"

	"github.com/krayonlabs/krayon/pkgs/value"
)

// Result is the uniform outcome of every validate and execute call.
// Failures are values, never panics: the public API never lets an
// internal fault escape uncaught.
type Result struct {
	Success bool
	Message string
	Value   value.Value
}

// Ok returns a successful result with a message and no return value.
func Ok(message string) Result {
	return Result{Success: true, Message: message}
}

// OkValue returns a successful result carrying a return value.
func OkValue(message string, v value.Value) Result {
	return Result{Success: true, Message: message, Value: v}
}

// Fail returns a failed result with a message.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

// Failf returns a failed result with a formatted message.
func Failf(format string, args ...interface{}) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}
