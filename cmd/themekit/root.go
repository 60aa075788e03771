package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/provider"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "Themeable, translated terminal components sharing one state store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Provider file (.yaml, .yml or .toml); built-in themes when empty")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newTranslateCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "themekit",
	})
}

// loadProvider builds the provider from --config, or the built-in one.
func loadProvider(cmd *cobra.Command, flags *rootFlags) (*provider.Provider, error) {
	log, err := newLogger(cmd, flags)
	if err != nil {
		return nil, err
	}

	if flags.configPath == "" {
		log.Debug("no provider file, using built-in themes")
		return provider.Default(provider.WithLogger(log)), nil
	}

	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, err
	}
	p, err := provider.Load(flags.configPath, provider.WithLogger(log))
	if err != nil {
		log.Error(err, "provider file rejected")
		return nil, err
	}
	return p, nil
}
