// File: cmd/scriptkit/errors.go
package main

// Exit codes for the CLI
const (
	// ExitSuccess indicates the command completed successfully
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure after the command line was accepted,
	// such as an invalid log level or an unwritable log file
	ExitFailure = 1

	// ExitUsage indicates the command line itself was rejected
	ExitUsage = 2
)

// ExitError carries the exit code for errors raised once a command has started
// running. Errors without one come from argument parsing and are usage errors.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func failure(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitFailure, Err: err}
}
