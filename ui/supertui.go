package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui/common"
)

// MainModel owns the active screen. bubbletea feeds it one message at a
// time and renders between messages, so a frame never sees a half applied
// key press.
type MainModel struct {
	frame  common.Frame
	screen Screen
	pages  [][]domain.Note
}

// NewModel starts on the login screen when withLogin is set, otherwise
// straight on the feed. pages are only read.
func NewModel(pages [][]domain.Note, withLogin bool, width int, height int) MainModel {
	m := MainModel{
		frame: common.Frame{Width: width, Height: height},
		pages: pages,
	}
	if withLogin {
		m.screen = NewLoginScreen()
	} else {
		m.screen = NewHomeScreen(pages)
	}
	return m
}

// Screen returns the active screen.
func (m MainModel) Screen() Screen {
	return m.screen
}

func (m MainModel) Frame() common.Frame {
	return m.frame
}

func (m MainModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame = common.Frame{Width: msg.Width, Height: msg.Height}
		return m, nil

	case common.LoggedInMsg:
		log.Info("Logged in", "instance", msg.Instance, "username", msg.Username)
		m.screen = NewHomeScreen(m.pages)
		return m, m.screen.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			log.Debug("Exit requested", "screen", m.screen.Kind)
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	// Nothing to draw into until the terminal size is known; the next
	// frame retries.
	if !m.frame.Valid() {
		return ""
	}
	return m.screen.View(m.frame)
}
