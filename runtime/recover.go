package runtime

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/nessan/utilities/log"
)

const redactedPanicMsg = "panic recovered (details redacted)"

// maxStackLen caps the stack trace attached to a recovered panic report.
const maxStackLen = 4096

// panicError wraps a panic value as an error for reporting.
type panicError struct {
	message string
}

// Error returns the panic error message.
func (e *panicError) Error() string {
	return e.message
}

// Recover logs a recovered panic and prevents it from propagating.
// Use it as a deferred call at goroutine entry points:
//
//	defer runtime.Recover(ctx, logger, "worker")
//
// In production mode the panic value and stack trace are redacted.
func Recover(ctx context.Context, logger log.Logger, component string) {
	panicValue := recover()
	if panicValue == nil {
		return
	}

	isProduction := IsProductionMode()
	err := toPanicError(panicValue, isProduction)

	fields := []log.Field{
		log.Err(err),
		log.String("component", component),
	}

	if !isProduction {
		stack := string(debug.Stack())
		if len(stack) > maxStackLen {
			stack = stack[:maxStackLen] + "\n...[truncated]"
		}

		fields = append(fields, log.String("stack_trace", stack))
	}

	if logger != nil {
		logger.Log(ctx, log.LevelError, "panic recovered", fields...)
	}
}

func toPanicError(panicValue any, isProduction bool) error {
	if isProduction {
		return &panicError{message: redactedPanicMsg}
	}

	if err, ok := panicValue.(error); ok {
		return err
	}

	if message, ok := panicValue.(string); ok {
		return &panicError{message: message}
	}

	return &panicError{message: "panic: " + formatPanicValue(panicValue)}
}

// formatPanicValue formats a panic value as a string.
func formatPanicValue(value any) string {
	if value == nil {
		return "<nil>"
	}

	switch val := value.(type) {
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}
