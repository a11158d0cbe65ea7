package notes

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const tabSpaces = "    "

// Wrap reflows text to width terminal cells. Words are kept whole where
// they fit and broken where they don't, so no line is wider than width.
func Wrap(text string, width int) string {
	if width < 1 {
		width = 1
	}
	// wordwrap counts a tab as one cell while wrap expands it, so expand
	// first or lines with tabs get broken mid word.
	text = strings.ReplaceAll(text, "\t", tabSpaces)
	return wrap.String(wordwrap.String(text, width), width)
}

// LineCount is the number of lines text occupies once wrapped to width.
// Empty text still takes one line.
func LineCount(text string, width int) int {
	return strings.Count(Wrap(text, width), "\n") + 1
}
