// File: cmd/scriptkit/config_cmd.go
package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"scriptkit/internal/config"
	"scriptkit/internal/flags"
	"scriptkit/internal/ui/prompt"
)

type configFlags struct {
	force bool
}

func newConfigCmd(configFile *string, prompter prompt.Prompter) *cobra.Command {
	cmdFlags := configFlags{}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		Long:  `The config file supplies defaults for --debug and --log_file. Flags and SCRIPTKIT_* environment variables take precedence over it.`,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Long: `Writes a config file holding the default settings. The path is taken from
the argument, then --config, then $HOME/.config/scriptkit/config.yaml.
An existing file is only replaced after confirmation or with --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(args, *configFile)
			if err != nil {
				return failure(err)
			}

			err = config.WriteFile(path, config.Defaults(), cmdFlags.force)
			if errors.Is(err, config.ErrConfigExists) {
				confirmed, promptErr := prompter.Confirm(
					fmt.Sprintf("Config file %s already exists and will be replaced.", path),
					filepath.Base(path),
				)
				if promptErr != nil {
					return failure(promptErr)
				}
				if !confirmed {
					fmt.Fprintln(cmd.ErrOrStderr(), "Aborted, config file left unchanged.")
					return nil
				}
				err = config.WriteFile(path, config.Defaults(), true)
			}
			if err != nil {
				return failure(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config file written: %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&cmdFlags.force, flags.Force, flags.ForceShort, false, "Replace an existing config file without asking")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective optional settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.NewViper()
			if err := config.ReadConfigFile(v, *configFile); err != nil {
				return failure(err)
			}

			data, err := config.Effective(v).Marshal()
			if err != nil {
				return failure(err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return failure(err)
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func configPath(args []string, configFile string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if configFile != "" {
		return configFile, nil
	}
	return config.DefaultPath()
}
