// Package contract holds the one assertion helper used throughout this
// module to turn a contract breach into a panic, per the error-handling
// design: no recoverable error type surfaces from the core, every
// operation either succeeds or represents a programmer error.
package contract

import "fmt"

// Assertf panics with a formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf(format, args...))
	}
}
