package web

import (
	"fmt"
	"time"

	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/util"
	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	"github.com/muesli/reflow/truncate"
)

const titleWidth = 60

// NoteStore is the read side of the notes database.
type NoteStore interface {
	ReadPages() ([][]domain.Note, error)
	ReadNoteById(id uuid.UUID) (*domain.Note, error)
	CountNotes() (int, error)
}

func baseURL(conf *util.AppConfig) string {
	return fmt.Sprintf("http://%s:%d", conf.Conf.Host, conf.Conf.HttpPort)
}

func noteURL(conf *util.AppConfig, id uuid.UUID) string {
	return fmt.Sprintf("%s/feed/%s", baseURL(conf), id)
}

func noteItem(conf *util.AppConfig, page int, note domain.Note) *feeds.Item {
	return &feeds.Item{
		Id:          note.Id.String(),
		Title:       truncate.StringWithTail(note.Body, titleWidth, "..."),
		Link:        &feeds.Link{Href: noteURL(conf, note.Id)},
		Description: fmt.Sprintf("page %d", page+1),
		Content:     note.Body,
		Author:      &feeds.Author{Name: note.Author.DisplayName, Email: "@" + note.Author.Handle},
	}
}

// buildFeed turns the stored pages into a feed, newest page last.
func buildFeed(conf *util.AppConfig, store NoteStore) (*feeds.Feed, error) {
	pages, err := store.ReadPages()
	if err != nil {
		return nil, fmt.Errorf("error retrieving notes: %w", err)
	}

	feed := &feeds.Feed{
		Title:       "keytan timeline",
		Link:        &feeds.Link{Href: baseURL(conf) + "/feed"},
		Description: "Notes shown on the keytan home timeline",
		Created:     time.Now(),
	}
	for i, page := range pages {
		for _, note := range page {
			feed.Items = append(feed.Items, noteItem(conf, i, note))
		}
	}
	return feed, nil
}

func GetRSS(conf *util.AppConfig, store NoteStore) (string, error) {
	feed, err := buildFeed(conf, store)
	if err != nil {
		return "", err
	}
	return feed.ToRss()
}

func GetAtom(conf *util.AppConfig, store NoteStore) (string, error) {
	feed, err := buildFeed(conf, store)
	if err != nil {
		return "", err
	}
	return feed.ToAtom()
}

// GetRSSItem renders a single note as a one item RSS feed.
func GetRSSItem(conf *util.AppConfig, store NoteStore, id uuid.UUID) (string, error) {
	note, err := store.ReadNoteById(id)
	if err != nil {
		return "", fmt.Errorf("error retrieving note %s: %w", id, err)
	}

	url := noteURL(conf, note.Id)
	feed := &feeds.Feed{
		Title:   note.Byline(),
		Link:    &feeds.Link{Href: url},
		Author:  &feeds.Author{Name: note.Author.DisplayName, Email: "@" + note.Author.Handle},
		Created: time.Now(),
		Items: []*feeds.Item{{
			Id:      note.Id.String(),
			Title:   truncate.StringWithTail(note.Body, titleWidth, "..."),
			Link:    &feeds.Link{Href: url},
			Content: note.Body,
			Author:  &feeds.Author{Name: note.Author.DisplayName, Email: "@" + note.Author.Handle},
		}},
	}
	return feed.ToRss()
}
