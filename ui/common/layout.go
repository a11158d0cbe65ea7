package common

const (
	HeaderHeight = 4
	StatusHeight = 1
)

// Frame is the drawable area of the terminal for one render pass.
type Frame struct {
	Width  int
	Height int
}

// Valid reports whether anything can be drawn. Frames are invalid until
// the first window size is known.
func (f Frame) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

// FeedLayout is the vertical split of the feed view: a header band, the
// note region and a one line status row.
type FeedLayout struct {
	Header int
	Notes  int
	Status int
}

// SplitFeed partitions height rows. The header is served first, then the
// status row, and the notes fill whatever is left.
func SplitFeed(height int) FeedLayout {
	if height <= 0 {
		return FeedLayout{}
	}

	l := FeedLayout{Header: min(HeaderHeight, height)}
	l.Status = min(StatusHeight, height-l.Header)
	l.Notes = height - l.Header - l.Status
	return l
}
