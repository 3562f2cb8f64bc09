package form

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/passcheck/internal/ui/layout"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	DecLarge key.Binding
	IncLarge key.Binding
	Submit   key.Binding
	Reset    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "tab", "j"),
			key.WithHelp("↑↓", "Field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab", "k"),
		),
		Dec: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←→", "Change"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		DecLarge: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgUp/PgDn", "±10"),
		),
		IncLarge: key.NewBinding(
			key.WithKeys("pgup"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Predict"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "Reset"),
		),
	}
}

// hints lists the bindings that carry help text, in footer order.
func (k keyMap) hints() []layout.KeyHint {
	var out []layout.KeyHint
	for _, b := range []key.Binding{k.Next, k.Dec, k.DecLarge, k.Submit, k.Reset} {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
