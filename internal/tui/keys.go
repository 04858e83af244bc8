package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/kanban/internal/config"
)

// keyMap holds the bindings of the board view; it implements help.KeyMap
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevBoard  key.Binding
	NextBoard  key.Binding

	MoveBoardUp    key.Binding
	MoveBoardDown  key.Binding
	MoveBoardLeft  key.Binding
	MoveBoardRight key.Binding

	MoveColumnLeft  key.Binding
	MoveColumnRight key.Binding

	PrevProject key.Binding
	NextProject key.Binding

	Refresh  key.Binding
	ShowHelp key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(k, help string, extra ...string) key.Binding {
		return key.NewBinding(
			key.WithKeys(append([]string{k}, extra...)...),
			key.WithHelp(k, help),
		)
	}
	return keyMap{
		PrevColumn: bind(km.PrevColumn, "prev column", "left"),
		NextColumn: bind(km.NextColumn, "next column", "right"),
		PrevBoard:  bind(km.PrevBoard, "prev board", "up"),
		NextBoard:  bind(km.NextBoard, "next board", "down"),

		MoveBoardUp:    bind(km.MoveBoardUp, "move board up"),
		MoveBoardDown:  bind(km.MoveBoardDown, "move board down"),
		MoveBoardLeft:  bind(km.MoveBoardLeft, "move board left"),
		MoveBoardRight: bind(km.MoveBoardRight, "move board right"),

		MoveColumnLeft:  bind(km.MoveColumnLeft, "move column left"),
		MoveColumnRight: bind(km.MoveColumnRight, "move column right"),

		PrevProject: bind(km.PrevProject, "prev project"),
		NextProject: bind(km.NextProject, "next project"),

		Refresh:  bind(km.Refresh, "refresh"),
		ShowHelp: bind(km.ShowHelp, "help"),
		Quit:     bind(km.Quit, "quit", "ctrl+c"),
	}
}

// ShortHelp is shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBoard, k.NextColumn, k.MoveBoardDown, k.MoveBoardRight, k.ShowHelp, k.Quit}
}

// FullHelp is shown when help is toggled on
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevBoard, k.NextBoard},
		{k.MoveBoardUp, k.MoveBoardDown, k.MoveBoardLeft, k.MoveBoardRight},
		{k.MoveColumnLeft, k.MoveColumnRight, k.PrevProject, k.NextProject},
		{k.Refresh, k.ShowHelp, k.Quit},
	}
}
