package domain

const (
	shortLorem = "Lorem ipsum dolor sit amet, qui minim labore adipisicing minim sint cillum sint consectetur cupidatat."
	longLorem  = "Lorem ipsum dolor sit amet, officia excepteur ex fugiat reprehenderit enim labore culpa sint ad nisi Lorem pariatur mollit ex esse exercitation amet. Nisi anim cupidatat excepteur officia. Reprehenderit nostrud nostrud ipsum Lorem est aliquip amet voluptate voluptate dolor minim nulla est proident. Nostrud officia pariatur ut officia. Sit irure elit esse ea nulla sunt ex occaecat reprehenderit commodo officia dolor Lorem duis laboris cupidatat officia voluptate. Culpa proident adipisicing id nulla nisi laboris ex in Lorem sunt duis officia eiusmod. Aliqua reprehenderit commodo ex non excepteur duis sunt velit enim. Voluptate laboris sint cupidatat ullamco ut ea consectetur et est culpa et culpa duis."
)

// PlaceholderAuthor is the author of every placeholder note.
var PlaceholderAuthor = User{
	DisplayName: "John Misskey",
	Handle:      "johnmisskey@misskey.io",
}

// PlaceholderPages returns the fixed feed used until a real instance is
// wired in: a first page of ten notes and a second page of four.
func PlaceholderPages() [][]Note {
	layout := [][]string{
		{shortLorem, shortLorem, shortLorem, shortLorem, shortLorem, shortLorem, longLorem, shortLorem, longLorem, shortLorem},
		{shortLorem, shortLorem, longLorem, shortLorem},
	}

	pages := make([][]Note, 0, len(layout))
	for _, texts := range layout {
		notes := make([]Note, 0, len(texts))
		for i := range texts {
			notes = append(notes, NewNote(PlaceholderAuthor, &texts[i]))
		}
		pages = append(pages, notes)
	}
	return pages
}
