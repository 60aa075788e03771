package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/hooks"
)

func newTranslateCmd(root *rootFlags) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "translate <path>...",
		Short: "Look up strings in the provider's string tables",
		Long: `Translate resolves each argument the way components do: the argument
is split on spaces, every token is looked up as a dotted path and tokens
without a translation are echoed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProvider(cmd, root)
			if err != nil {
				return err
			}

			i18n := hooks.UseI18n(p.Store())
			defer i18n.Unmount()
			if lang != "" {
				if !slices.Contains(i18n.Languages(), strings.ToUpper(lang)) {
					return fmt.Errorf("no strings for language %q", lang)
				}
				i18n.SetLanguage(lang)
			}

			for _, path := range args {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T(path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language to translate into instead of the configured one")

	return cmd
}
