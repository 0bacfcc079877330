// File: cmd/scriptkit/main.go
package main

import (
	"os"

	"scriptkit/internal/logger"
)

// exitFunc is overridden in tests to capture the exit code
var exitFunc = os.Exit

func main() {
	// Minimal logger until the command line has been parsed
	log := logger.NewLogger(os.Stderr)

	exitFunc(run(log, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
