package notes

import (
	"github.com/deemkeen/keytan/domain"
)

// Feed is an ordered batch of pages with a cursor over pages. Note level
// navigation is delegated to the selected page.
type Feed struct {
	pages    []Page
	selected int
}

// NewFeed builds one page per batch of notes and selects the first page,
// if there is one.
func NewFeed(batches [][]domain.Note) Feed {
	f := Feed{
		pages:    make([]Page, 0, len(batches)),
		selected: noSelection,
	}
	for _, notes := range batches {
		f.pages = append(f.pages, NewPage(notes))
	}
	if len(f.pages) > 0 {
		f.selected = 0
	}
	return f
}

func (f *Feed) PageCount() int {
	return len(f.pages)
}

// SelectedPageIndex returns the index of the selected page, if any.
func (f *Feed) SelectedPageIndex() (int, bool) {
	if f.selected == noSelection {
		return 0, false
	}
	return f.selected, true
}

// SelectedPage returns the selected page, or nil when none is selected.
func (f *Feed) SelectedPage() *Page {
	idx, ok := f.SelectedPageIndex()
	if !ok {
		return nil
	}
	return &f.pages[idx]
}

func (f *Feed) SelectNextPage() {
	if idx, ok := f.SelectedPageIndex(); ok && idx+1 < len(f.pages) {
		f.selected = idx + 1
	}
}

func (f *Feed) SelectPrevPage() {
	if idx, ok := f.SelectedPageIndex(); ok && idx > 0 {
		f.selected = idx - 1
	}
}

func (f *Feed) SelectNextNote() {
	if page := f.SelectedPage(); page != nil {
		page.Next()
	}
}

func (f *Feed) SelectPrevNote() {
	if page := f.SelectedPage(); page != nil {
		page.Prev()
	}
}

// JumpToFirst selects the first note of the selected page.
func (f *Feed) JumpToFirst() {
	if page := f.SelectedPage(); page != nil && page.Len() > 0 {
		page.Select(0)
	}
}

// JumpToLast selects the last note of the selected page.
func (f *Feed) JumpToLast() {
	if page := f.SelectedPage(); page != nil && page.Len() > 0 {
		page.Select(page.Len() - 1)
	}
}
