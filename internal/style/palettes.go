package style

// DefaultPalettes returns the built-in light and dark palettes. Providers
// fall back to them for themes their file does not declare.
func DefaultPalettes() map[string]Palette {
	return map[string]Palette{
		"light": {
			KeyText:            "#111827",
			KeyBackground:      "#f9fafb",
			KeyBackgroundColor: "#e2e8f0",
			KeyBorder:          "#64748b",
			KeySuccess:         "#22c55e",
			KeyError:           "#ef4444",
			KeyWarn:            "#eab308",
			KeyPrimary:         "#3b82f6",
		},
		"dark": {
			KeyText:            "#f9fafb",
			KeyBackground:      "#0b1120",
			KeyBackgroundColor: "#1f2937",
			KeyBorder:          "#94a3b8",
			KeySuccess:         "#4ade80",
			KeyError:           "#f87171",
			KeyWarn:            "#facc15",
			KeyPrimary:         "#60a5fa",
		},
	}
}

// IsBuiltinTheme reports whether name is one of DefaultPalettes.
func IsBuiltinTheme(name string) bool {
	_, ok := DefaultPalettes()[name]
	return ok
}
