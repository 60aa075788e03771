// Package provider assembles the process-wide store from a provider
// configuration. Components receive the store explicitly.
package provider

import (
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// Provider owns the store and the configuration it was built from.
type Provider struct {
	cfg   *config.Config
	store *state.Store
}

// Option customises provider construction.
type Option func(*options)

type options struct {
	log       *logger.Logger
	modifiers state.ModifierFactory
}

// WithLogger passes log to the store.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithModifiers installs a modifier factory. Modifiers declared in the
// configuration are layered over the ones it returns.
func WithModifiers(factory state.ModifierFactory) Option {
	return func(o *options) {
		o.modifiers = factory
	}
}

// New builds a provider from cfg. Built-in palettes fill in for themes the
// configuration does not declare.
func New(cfg *config.Config, opts ...Option) *Provider {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	initial := cfg.SharedState()
	for name, palette := range style.DefaultPalettes() {
		if _, ok := initial.Themes[name]; !ok {
			initial.Themes[name] = palette
		}
	}
	initial.Modifiers = combine(o.modifiers, initial.Modifiers)

	store := state.New(initial,
		state.WithLogger(o.log.WithField("component", "store")),
		state.WithMergeBase(cfg.StoreMergeBase()),
	)
	o.log.WithFields(map[string]any{
		"language":   initial.Language,
		"theme":      initial.Theme,
		"themes":     len(initial.Themes),
		"languages":  len(initial.Strings),
		"merge_base": cfg.StoreMergeBase().String(),
	}).Debug("provider ready")

	return &Provider{cfg: cfg, store: store}
}

// Load reads a provider file and builds the provider.
func Load(path string, opts ...Option) (*Provider, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...), nil
}

// Default returns a provider with the built-in palettes and English and
// French demo strings.
func Default(opts ...Option) *Provider {
	cfg := &config.Config{
		Language:  "EN",
		Theme:     "light",
		FontScale: 1,
		Strings: map[string]map[string]any{
			"EN": {
				"title":    "Theme kit",
				"greeting": "Hello",
				"language": "Language",
				"theme":    "Theme",
				"size":     "Text size",
				"save":     "Save",
				"delete":   "Delete",
				"status":   map[string]any{"current": "Current"},
			},
			"FR": {
				"title":    "Kit de thèmes",
				"greeting": "Bonjour",
				"language": "Langue",
				"theme":    "Thème",
				"size":     "Taille du texte",
				"save":     "Enregistrer",
				"delete":   "Supprimer",
				"status":   map[string]any{"current": "Actuel"},
			},
		},
		Toggles: config.Toggles{
			Languages:  []string{"FR", "EN"},
			FontScales: []float64{1.25, 1.5, 1},
			Themes:     []string{"dark", "light"},
		},
	}
	cfg.ApplyDefaults()
	return New(cfg, opts...)
}

// Store returns the shared store.
func (p *Provider) Store() *state.Store {
	return p.store
}

// Config returns the configuration the provider was built from.
func (p *Provider) Config() *config.Config {
	return p.cfg
}

func combine(base, over state.ModifierFactory) state.ModifierFactory {
	switch {
	case base == nil:
		return over
	case over == nil:
		return base
	}
	return func(palette style.Palette) style.Modifiers {
		merged := style.Modifiers{}
		for token, frag := range base(palette) {
			merged[token] = frag
		}
		for token, frag := range over(palette) {
			merged[token] = merged[token].Merge(frag)
		}
		return merged
	}
}
