package home

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui/common"
	"github.com/deemkeen/keytan/ui/header"
	"github.com/deemkeen/keytan/ui/notes"
)

type Model struct {
	Feed   notes.Feed
	Header header.Model
	keys   KeyMap
	help   help.Model
	// awaitingLast is set by a first "g"; a second one jumps to the last note.
	awaitingLast bool
}

func InitialModel(pages [][]domain.Note) Model {
	return Model{
		Feed: notes.NewFeed(pages),
		keys: DefaultKeyMap,
		help: help.New(),
	}
}

// AwaitingLast reports whether the next "g" jumps to the last note.
func (m Model) AwaitingLast() bool {
	return m.awaitingLast
}

func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.LastNote) {
		m.awaitingLast = false
	}

	switch {
	case key.Matches(msg, m.keys.NextNote):
		m.Feed.SelectNextNote()
	case key.Matches(msg, m.keys.PrevNote):
		m.Feed.SelectPrevNote()
	case key.Matches(msg, m.keys.NextPage):
		m.Feed.SelectNextPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.Feed.SelectPrevPage()
	case key.Matches(msg, m.keys.FirstNote):
		m.Feed.JumpToFirst()
	case key.Matches(msg, m.keys.LastNote):
		if m.awaitingLast {
			m.Feed.JumpToLast()
		}
		m.awaitingLast = !m.awaitingLast
	}
	return m, nil
}

func (m Model) View(width, height int) string {
	layout := common.SplitFeed(height)

	band := m.Header
	band.Pages = m.Feed.PageCount()
	band.Page, _ = m.Feed.SelectedPageIndex()

	sections := []string{band.View(width, layout.Header)}

	if layout.Notes > 0 {
		list := ""
		if page := m.Feed.SelectedPage(); page != nil {
			list = page.View(width, layout.Notes)
		}
		sections = append(sections, fill(list, layout.Notes))
	}

	if layout.Status > 0 {
		h := m.help
		h.Width = width
		sections = append(sections, h.View(m.keys))
	}

	return strings.Join(sections, "\n")
}

// fill pads s with empty lines up to height so the status row stays at
// the bottom.
func fill(s string, height int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= height {
		return s
	}
	return s + strings.Repeat("\n", height-lines)
}
