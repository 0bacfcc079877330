// File: internal/flags/flags.go
package flags

// Centralized definitions for CLI flags used across the application

const (
	// InputFile flags name the file the business logic reads
	InputFile      = "input_file"
	InputFileShort = "i"

	// OutputFile flags name the file the business logic writes
	OutputFile      = "output_file"
	OutputFileShort = "o"

	// LogFile flags duplicate all log output, at every level, into a file
	LogFile      = "log_file"
	LogFileShort = "l"

	// Debug flags set the minimum severity printed to the console
	Debug      = "debug"
	DebugShort = "d"

	// Config flags point at an explicit YAML config file
	Config = "config"

	// Force flags are used to bypass interactive confirmation prompts for destructive operations
	Force      = "force"
	ForceShort = "f"
)
