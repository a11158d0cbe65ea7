package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/deemkeen/keytan/ui/common"
)

const Hint = "Confirm (Enter) / Next (Tab) / Back (Shift-Tab) / Exit (Esc)"

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, true, false).
			BorderForeground(lipgloss.Color(common.COLOR_GREY))

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color(common.COLOR_MAGENTA))

	labelStyle        = lipgloss.NewStyle()
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(common.COLOR_MAGENTA)).Bold(true)
)

type Field int

const (
	Instance Field = iota
	Username
	Password
	fieldCount
)

func (f Field) Next() Field {
	return (f + 1) % fieldCount
}

func (f Field) Prev() Field {
	return (f + fieldCount - 1) % fieldCount
}

func (f Field) Label() string {
	switch f {
	case Instance:
		return "Instance"
	case Username:
		return "Username"
	default:
		return "Password"
	}
}

type Model struct {
	Inputs  [fieldCount]textinput.Model
	Focused Field
	Err     string
}

func InitialModel() Model {
	instance := textinput.New()
	instance.Placeholder = "misskey.io"
	instance.CharLimit = 253

	username := textinput.New()
	username.Placeholder = "johnmisskey"
	username.CharLimit = 100

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 200

	m := Model{Inputs: [fieldCount]textinput.Model{instance, username, password}}
	m.Inputs[Instance].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Value(f Field) string {
	return m.Inputs[f].Value()
}

// Update handles form keys and passes everything else, cursor blinks
// included, to the focused input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	switch {
	case isKey && keyMsg.String() == "tab":
		return m.focus(m.Focused.Next())
	case isKey && keyMsg.String() == "shift+tab":
		return m.focus(m.Focused.Prev())
	case isKey && keyMsg.String() == "enter":
		instance := strings.TrimSpace(m.Value(Instance))
		username := strings.TrimSpace(m.Value(Username))
		if instance == "" || username == "" {
			m.Err = "instance and username are required"
			return m, nil
		}
		m.Err = ""
		return m, func() tea.Msg {
			return common.LoggedInMsg{Instance: instance, Username: username}
		}
	}

	var cmd tea.Cmd
	m.Inputs[m.Focused], cmd = m.Inputs[m.Focused].Update(msg)
	return m, cmd
}

func (m Model) focus(f Field) (Model, tea.Cmd) {
	m.Inputs[m.Focused].Blur()
	m.Focused = f
	cmd := m.Inputs[m.Focused].Focus()
	return m, cmd
}

func (m Model) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	formWidth := max(width/2, 20)
	var rows []string
	for f := Instance; f < fieldCount; f++ {
		label := labelStyle.Render(f.Label())
		if f == m.Focused {
			label = focusedLabelStyle.Render("> " + f.Label())
		}
		input := m.Inputs[f]
		input.Width = formWidth - 2
		rows = append(rows, label, input.View(), "")
	}
	if m.Err != "" {
		rows = append(rows, common.ErrorStyle.Render(m.Err))
	}

	form := formStyle.Width(formWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{common.CaptionStyle.Render("Login")}, rows...)...),
	)

	inner := max(height-2, 1)
	body := lipgloss.Place(width, inner-1, lipgloss.Center, lipgloss.Center, form)
	hint := common.HelpStyle.Render(Hint)

	return screenStyle.Width(width).MaxHeight(height).Render(body + "\n" + hint)
}
