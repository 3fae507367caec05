package main

import "fmt"

// Exit codes for the textinfo CLI.
const (
	ExitOK             = 0 // Every document analysed.
	ExitInvalidArgs    = 1 // Invalid arguments, config or path.
	ExitPartialFailure = 2 // Some documents failed under --strict; the report was written.
	ExitTotalFailure   = 3 // Nothing could be analysed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "textinfo: some documents failed"
		case ExitTotalFailure:
			msg = "textinfo: no documents analysed"
		default:
			msg = "textinfo: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
