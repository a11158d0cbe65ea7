package home

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextNote  key.Binding
	PrevNote  key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstNote key.Binding
	LastNote  key.Binding
	Quit      key.Binding
}

var DefaultKeyMap = KeyMap{
	NextNote:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j/k", "note")),
	PrevNote:  key.NewBinding(key.WithKeys("k")),
	NextPage:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J/K", "page")),
	PrevPage:  key.NewBinding(key.WithKeys("K")),
	FirstNote: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "first")),
	LastNote:  key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "last")),
	Quit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextNote, k.NextPage, k.FirstNote, k.LastNote, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextNote, k.PrevNote, k.FirstNote, k.LastNote},
		{k.NextPage, k.PrevPage, k.Quit},
	}
}
