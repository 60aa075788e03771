package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/hooks"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

type resolveOptions struct {
	Size    int
	Theme   string
	JSON    bool
	Preview string
}

type resolveOutput struct {
	Theme     string         `json:"theme"`
	Modifiers []string       `json:"modifiers"`
	Touchable map[string]any `json:"touchable"`
	Text      map[string]any `json:"text"`
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [modifier...]",
		Short: "Print the styles a modifier list resolves to",
		Long: `Resolve applies the built-in modifiers (success, error, warn, round,
bordered) and the provider's custom modifiers to the active palette and
prints the touchable and text records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProvider(cmd, root)
			if err != nil {
				return err
			}

			theme := hooks.UseTheme(p.Store())
			defer theme.Unmount()
			if opts.Theme != "" {
				if _, ok := p.Store().State().Themes[opts.Theme]; !ok {
					return fmt.Errorf("unknown theme %q", opts.Theme)
				}
				theme.SetTheme(opts.Theme)
			}

			modifiers := strings.Join(args, " ")
			resolved := theme.Resolve(modifiers, opts.Size)
			out := resolveOutput{
				Theme:     theme.State().Name,
				Modifiers: style.Tokens(modifiers),
				Touchable: resolved.Touchable.Values(),
				Text:      resolved.Text.Values(),
			}

			w := cmd.OutOrStdout()
			if opts.JSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			printResolved(w, out)

			if opts.Preview != "" {
				btn := components.NewButton(p.Store(), opts.Preview).
					WithModifiers(modifiers).
					WithSize(opts.Size)
				defer btn.Unmount()
				fmt.Fprintln(w, btn.View())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 0, "Size in points used by the round modifier")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Theme to resolve against instead of the configured one")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output the records as JSON")
	cmd.Flags().StringVar(&opts.Preview, "preview", "", "Render a button with this title using the modifiers")

	return cmd
}

func printResolved(w io.Writer, out resolveOutput) {
	fmt.Fprintf(w, "theme: %s\n", out.Theme)
	fmt.Fprintf(w, "touchable: %s\n", formatRecord(out.Touchable))
	fmt.Fprintf(w, "text: %s\n", formatRecord(out.Text))
}

func formatRecord(record map[string]any) string {
	if len(record) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, record[k]))
	}
	return strings.Join(parts, " ")
}
