package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NoText is shown in place of a note body that has no text.
const NoText = "[no text]"

type User struct {
	DisplayName string
	Handle      string
}

type Note struct {
	Id     uuid.UUID
	Author User
	Body   string
	// Selected is render state only, set from the owning page on every pass.
	Selected bool
}

// NewNote builds a note for the given author. A nil text yields the
// placeholder body.
func NewNote(author User, text *string) Note {
	body := NoText
	if text != nil {
		body = *text
	}
	return Note{
		Id:     uuid.New(),
		Author: author,
		Body:   body,
	}
}

// Byline is the first line of a rendered note.
func (note *Note) Byline() string {
	return fmt.Sprintf("%s @%s", note.Author.DisplayName, note.Author.Handle)
}
