package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/deemkeen/keytan/ui/common"
	"github.com/deemkeen/keytan/util"
	"github.com/muesli/reflow/truncate"
)

// TooSmall is drawn instead of the band when it gets fewer than
// common.HeaderHeight rows.
const TooSmall = "Bar must be at least 4 lines high."

var (
	bandStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(common.COLOR_MAGENTA))

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(common.COLOR_PURPLE))
)

// Model is the status band at the top of the feed.
type Model struct {
	Notifications int
	Page          int
	Pages         int
}

func (m Model) StatusText() string {
	return fmt.Sprintf("%d notifications", m.Notifications)
}

func (m Model) PageText() string {
	if m.Pages == 0 {
		return "no pages"
	}
	return fmt.Sprintf("page %d/%d", m.Page+1, m.Pages)
}

// View draws the band into width x height cells.
func (m Model) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if height < common.HeaderHeight {
		return truncate.String(TooSmall, uint(width))
	}

	inner := max(width-2, 1)
	left := m.StatusText()
	right := pageStyle.Render(m.PageText()) + " " + common.HelpStyle.UnsetPadding().Render(util.GetNameAndVersion())
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)

	line := left
	if gap > 0 {
		line = lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
	}

	return bandStyle.
		Width(inner).
		Height(common.HeaderHeight - 2).
		MaxWidth(width).
		Render(line)
}
