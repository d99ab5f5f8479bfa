// Package log defines the structured logging contract used across the library.
//
// The core type is the Logger interface: a single Log method taking a context,
// a severity Level, a message, and typed Fields, plus With/WithGroup for
// scoped child loggers. Backends live elsewhere; the zap subpackage provides
// the production implementation and NewNop provides a silent one.
//
// All helpers in this package are nil-safe: a nil Logger value can be passed
// around freely and simply drops events.
package log
