// Package components renders themeable, translated terminal components on
// top of lipgloss.
//
// Every Button and Text mounts hooks on a shared state.Store when it is
// created and must be unmounted when it leaves the screen:
//
//	store := provider.Default().Store()
//	save := components.NewButton(store, "save").WithModifiers("success bordered")
//	lang := components.NewButton(store, "language").
//		WithToggles(toggle.Options{LangToggle: []string{"FR", "EN"}})
//	defer components.VStack(save, lang).Unmount()
//
//	lang.Press()          // every mounted component now renders in French
//	fmt.Println(save.View())
//
// # Modifiers
//
// A Button's modifier string is a space separated token list. The built-in
// tokens are success, error, warn, round and bordered; providers add their
// own through a state.ModifierFactory. Built-in fragments are applied
// first, provider fragments second, and within each layer later tokens win.
//
// # Sizes
//
// Sizes are given in points and mapped to terminal cells by style.Columns
// and style.Rows.
package components
