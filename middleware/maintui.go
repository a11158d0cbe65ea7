package middleware

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui"
	"github.com/deemkeen/keytan/util"
	"github.com/muesli/termenv"
)

// MainTui runs one timeline program per SSH session. Every session gets
// its own model over the shared, read only pages.
func MainTui(conf *util.AppConfig, pages [][]domain.Note) wish.Middleware {
	teaHandler := func(s ssh.Session) *tea.Program {
		pty, _, active := s.Pty()
		if !active {
			wish.Println(s, "no active terminal, skipping")
			return nil
		}

		m := ui.NewModel(pages, conf.Conf.WithLogin, pty.Window.Width, pty.Window.Height)
		return tea.NewProgram(m, tea.WithInput(s), tea.WithOutput(s), tea.WithAltScreen())
	}
	return bm.MiddlewareWithProgramHandler(teaHandler, termenv.ANSI256)
}
