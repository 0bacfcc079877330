// File: cmd/scriptkit/root.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"scriptkit/internal/config"
	"scriptkit/internal/flags"
	"scriptkit/internal/logger"
	"scriptkit/internal/ui/prompt"
)

const appName = "scriptkit"

type rootFlags struct {
	inputFile  string
	outputFile string
	logFile    string
	debug      string
	configFile string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmdFlags := rootFlags{}

	rootCmd := &cobra.Command{
		Use:   appName + " -i /path/to/input.txt -o /path/to/output.txt",
		Short: "Template for future command-line tools",
		Long: `scriptkit is the starting point for new command-line tools. It parses
the input and output paths, sets up console logging and, with --log_file,
duplicates every log record into a file.

Derived tools put their work in the run step; the template only logs the
arguments it received.`,
		Example: `  scriptkit -i in.txt -o out.txt
  scriptkit -i in.txt -o out.txt -d INFO -l run.log`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveArguments(cmd, cmdFlags.configFile)
			if err != nil {
				return failure(err)
			}

			if err := checkArgs(resolved); err != nil {
				return failure(err)
			}

			app, err := newApp(resolved, cmd.ErrOrStderr())
			if err != nil {
				return failure(err)
			}
			defer app.Close()

			// Library code logging through slog reaches the same sinks for the
			// duration of the run
			prev := slog.Default()
			slog.SetDefault(app.Logger.Logger)
			defer slog.SetDefault(prev)

			return failure(app.Run(cmd.Context()))
		},
	}

	levels := strings.Join(logger.LevelNames(), "/")
	rootCmd.Flags().StringVarP(&cmdFlags.inputFile, flags.InputFile, flags.InputFileShort, "", "Path to read the input file (required)")
	rootCmd.Flags().StringVarP(&cmdFlags.outputFile, flags.OutputFile, flags.OutputFileShort, "", "Path to write the output file (required)")
	rootCmd.Flags().StringVarP(&cmdFlags.logFile, flags.LogFile, flags.LogFileShort, "", "Path to write the logfile")
	rootCmd.Flags().StringVarP(&cmdFlags.debug, flags.Debug, flags.DebugShort, config.DefaultDebug, "Set the debug level ("+levels+")")
	rootCmd.MarkFlagRequired(flags.InputFile)
	rootCmd.MarkFlagRequired(flags.OutputFile)

	rootCmd.PersistentFlags().StringVar(&cmdFlags.configFile, flags.Config, "", "config file (default is $HOME/.config/scriptkit/config.yaml)")

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(
		newConfigCmd(&cmdFlags.configFile, prompt.NewStandardPrompter(stdin, stderr)),
		newVersionCmd(),
	)
	return rootCmd
}

// Layers flags over the environment, the config file and the defaults
func resolveArguments(cmd *cobra.Command, configFile string) (config.Arguments, error) {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags(), flags.InputFile, flags.OutputFile, flags.LogFile, flags.Debug); err != nil {
		return config.Arguments{}, err
	}
	if err := config.ReadConfigFile(v, configFile); err != nil {
		return config.Arguments{}, err
	}
	return config.Resolve(v)
}

// Executes the command line and returns the process exit code. Failures after
// the command line was accepted are reported through log; usage errors are
// printed with the usage text.
func run(log *slog.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdin, stdout, stderr)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err == nil {
		return ExitSuccess
	}

	if cmd == nil {
		cmd = rootCmd
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		log.Error("Command failed", "command", cmd.CommandPath(), "error", exitErr.Err)
		return exitErr.Code
	}

	fmt.Fprintln(stderr, "Error:", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsage
}
