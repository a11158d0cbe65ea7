package notes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui/common"
	"github.com/muesli/reflow/truncate"
)

// chrome is the number of rows a note needs besides its body: a border
// line on each side, the byline and the blank line under it.
const chrome = 4

var (
	noteStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, true, false).
			Padding(0, 1)

	selectedNoteStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(common.COLOR_LIGHTBLUE))

	bylineStyle = lipgloss.NewStyle().Bold(true)
)

// TextWidth is the width available to a note body inside a row that is
// width cells wide.
func TextWidth(width int) int {
	return max(width-2, 1)
}

// Height is the number of rows a note needs when its body is wrapped to
// textWidth.
func Height(note domain.Note, textWidth int) int {
	return LineCount(note.Body, textWidth) + chrome
}

// RenderNote draws one note as a box width cells wide. Selected notes are
// closed on all four sides, the others only get top and bottom lines.
func RenderNote(note domain.Note, width int) string {
	textWidth := TextWidth(width)

	byline := bylineStyle.Render(truncate.String(note.Byline(), uint(textWidth)))
	content := strings.Join([]string{byline, "", Wrap(note.Body, textWidth)}, "\n")

	var box string
	if note.Selected {
		box = selectedNoteStyle.Width(textWidth).Render(content)
	} else {
		box = noteStyle.Width(textWidth + 2).Render(content)
	}
	if width < textWidth+2 {
		// too narrow for the border and one cell of text
		box = lipgloss.NewStyle().MaxWidth(width).Render(box)
	}
	return box
}
