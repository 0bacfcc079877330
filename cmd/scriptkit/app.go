// File: cmd/scriptkit/app.go
package main

import (
	"context"
	"io"

	"scriptkit/internal/config"
	"scriptkit/internal/logger"
)

// appContainer holds the dependencies a run needs: the validated arguments
// and the logger built from them
type appContainer struct {
	Args   config.Arguments
	Logger *logger.Logger
}

// Validates the resolved arguments before anything is configured from them
func checkArgs(args config.Arguments) error {
	return args.Validate()
}

// Creates the application container, configuring the logger from args
func newApp(args config.Arguments, console io.Writer) (*appContainer, error) {
	log, err := logger.Configure(logger.Options{
		Name:    appName,
		Level:   args.Debug,
		LogFile: args.LogFile,
		Console: console,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("Logger configured", "level", logger.LevelName(log.Level()), "sinks", len(log.Sinks()))

	return &appContainer{
		Args:   args,
		Logger: log,
	}, nil
}

// Run is where derived tools read Args.InputFile and write Args.OutputFile.
// The template itself only reports what it was given.
func (a *appContainer) Run(ctx context.Context) error {
	a.Logger.DebugContext(ctx, "Arguments resolved",
		"input_file", a.Args.InputFile,
		"output_file", a.Args.OutputFile,
		"log_file", a.Args.LogFile,
	)
	return nil
}

func (a *appContainer) Close() error {
	return a.Logger.Close()
}
