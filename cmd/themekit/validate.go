package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Check a provider file without running anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := validateConfigPath(path); err != nil {
				return err
			}

			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				log.Error(err, "validation failed")
				return fmt.Errorf("invalid provider file: %w", err)
			}

			themes := "built-in only"
			if names := cfg.ThemeNames(); len(names) > 0 {
				themes = strings.Join(names, ", ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (themes: %s; %d languages, %d modifiers)\n",
				path, themes, len(cfg.Strings), len(cfg.Modifiers))
			return nil
		},
	}
}
