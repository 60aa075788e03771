package hooks

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/state"
)

// I18nState is the language slice of the shared state.
type I18nState struct {
	Language string
	Strings  state.Strings
}

// I18n is the language hook.
type I18n struct {
	*binding
}

// UseI18n mounts a language hook on store.
func UseI18n(store *state.Store, opts ...Option) *I18n {
	return &I18n{binding: mount(store, opts...)}
}

// State returns the hook's cached language state.
func (h *I18n) State() I18nState {
	local := h.snapshot()
	return I18nState{Language: local.Language, Strings: local.Strings}
}

// SetLanguage switches every mounted consumer to lang (stored uppercase).
func (h *I18n) SetLanguage(lang string) {
	h.dispatch(state.LanguagePatch(strings.ToUpper(lang)))
}

// Languages lists the languages that have a string table.
func (h *I18n) Languages() []string {
	return h.snapshot().Strings.Languages()
}

// GetString translates v. Values that are not strings are returned
// unchanged. A string is split on spaces; each token is looked up as a
// dotted path in the current language's table, a miss echoes the token,
// and the pieces are joined without a separator.
func (h *I18n) GetString(v any) any {
	path, ok := v.(string)
	if !ok {
		return v
	}
	return h.T(path)
}

// T is GetString for callers that only deal in strings.
func (h *I18n) T(path string) string {
	local := h.snapshot()
	table := local.Strings[local.Language]

	var b strings.Builder
	for _, token := range strings.Split(path, " ") {
		if text, ok := Lookup(table, token); ok {
			b.WriteString(text)
			continue
		}
		b.WriteString(token)
	}
	return b.String()
}

// Lookup walks a dotted path ("menu.file.open") through table. Empty
// strings and nested tables count as misses.
func Lookup(table state.StringTable, path string) (string, bool) {
	if table == nil || path == "" {
		return "", false
	}

	var node any = map[string]any(table)
	for _, key := range strings.Split(path, ".") {
		next, ok := child(node, key)
		if !ok {
			return "", false
		}
		node = next
	}

	switch leaf := node.(type) {
	case string:
		return leaf, leaf != ""
	case int, int64, float64, bool:
		return fmt.Sprint(leaf), true
	default:
		return "", false
	}
}

func child(node any, key string) (any, bool) {
	switch typed := node.(type) {
	case map[string]any:
		v, ok := typed[key]
		return v, ok
	case state.StringTable:
		v, ok := typed[key]
		return v, ok
	case map[string]string:
		v, ok := typed[key]
		return v, ok
	default:
		return nil, false
	}
}
