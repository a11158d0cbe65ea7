package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui/common"
	"github.com/deemkeen/keytan/ui/home"
	"github.com/deemkeen/keytan/ui/login"
)

// Screen is one full terminal view. Kind says which of the models is live;
// the other one is left zero.
type Screen struct {
	Kind  common.SessionState
	login login.Model
	home  home.Model
}

func NewLoginScreen() Screen {
	return Screen{Kind: common.LoginView, login: login.InitialModel()}
}

func NewHomeScreen(pages [][]domain.Note) Screen {
	return Screen{Kind: common.HomeView, home: home.InitialModel(pages)}
}

func (s Screen) Init() tea.Cmd {
	switch s.Kind {
	case common.LoginView:
		return s.login.Init()
	default:
		return nil
	}
}

// Update hands a message to the live model. Home only reacts to keys.
func (s Screen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.Kind {
	case common.LoginView:
		s.login, cmd = s.login.Update(msg)
	case common.HomeView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			s.home, cmd = s.home.Update(keyMsg)
		}
	}
	return s, cmd
}

// View renders the live model into frame.
func (s Screen) View(frame common.Frame) string {
	switch s.Kind {
	case common.LoginView:
		return s.login.View(frame.Width, frame.Height)
	case common.HomeView:
		return s.home.View(frame.Width, frame.Height)
	default:
		return ""
	}
}
