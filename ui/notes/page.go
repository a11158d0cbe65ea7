package notes

import (
	"strings"

	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui/common"
)

// noSelection marks a page whose cursor is unset.
const noSelection = -1

// Page is an ordered batch of notes with its own selection cursor.
type Page struct {
	notes    []domain.Note
	selected int
}

// NewPage copies notes into a page. The first note is selected unless the
// page is empty, in which case nothing is.
func NewPage(notes []domain.Note) Page {
	p := Page{
		notes:    make([]domain.Note, len(notes)),
		selected: noSelection,
	}
	copy(p.notes, notes)
	if len(p.notes) > 0 {
		p.selected = 0
	}
	return p
}

func (p *Page) Len() int {
	return len(p.notes)
}

// Notes returns a copy of the notes on this page.
func (p *Page) Notes() []domain.Note {
	notes := make([]domain.Note, len(p.notes))
	copy(notes, p.notes)
	return notes
}

// Selected returns the selected index, if any.
func (p *Page) Selected() (int, bool) {
	if p.selected == noSelection {
		return 0, false
	}
	return p.selected, true
}

// Select moves the cursor to idx. The caller guarantees idx is in range.
func (p *Page) Select(idx int) {
	p.selected = idx
}

// Next selects the next note. Does nothing at the end.
func (p *Page) Next() {
	if idx, ok := p.Selected(); ok && idx+1 < len(p.notes) {
		p.Select(idx + 1)
	}
}

// Prev selects the previous note. Does nothing at the start.
func (p *Page) Prev() {
	if idx, ok := p.Selected(); ok && idx > 0 {
		p.Select(idx - 1)
	}
}

// Heights reports the row height of every note for a list width cells
// wide. Rendering never calls this; it only sizes the rows it draws.
func (p *Page) Heights(width int) []int {
	textWidth := TextWidth(width)
	heights := make([]int, len(p.notes))
	for i := range p.notes {
		heights[i] = Height(p.notes[i], textWidth)
	}
	return heights
}

// Window returns the half-open range of notes drawn into a list of the
// given size. The selected note is always inside the window: when it
// doesn't fit below the first note, the window ends at the selected note
// and extends upwards as far as the height allows. Only notes near the
// window are measured.
func (p *Page) Window(width, height int) (int, int) {
	if len(p.notes) == 0 || height <= 0 {
		return 0, 0
	}

	textWidth := TextWidth(width)
	start, ok := p.Selected()
	if !ok {
		start = 0
	} else {
		used := Height(p.notes[start], textWidth)
		for start > 0 {
			h := Height(p.notes[start-1], textWidth)
			if used+h > height {
				break
			}
			used += h
			start--
		}
	}

	end, used := start, 0
	for end < len(p.notes) && used < height {
		used += Height(p.notes[end], textWidth)
		end++
	}
	return start, end
}

// View draws the visible part of the page into width x height cells. The
// last row is clipped when it runs past the bottom.
func (p *Page) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(p.notes) == 0 {
		return common.EmptyStyle.Render("No notes on this page.")
	}

	start, end := p.Window(width, height)
	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		note := p.notes[i]
		note.Selected = i == p.selected
		lines = append(lines, strings.Split(RenderNote(note, width), "\n")...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
