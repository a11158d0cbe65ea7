package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deemkeen/keytan/db"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type brokenStore struct{}

var errBroken = errors.New("database is gone")

func (brokenStore) ReadPages() ([][]domain.Note, error) { return nil, errBroken }
func (brokenStore) ReadNoteById(uuid.UUID) (*domain.Note, error) { return nil, errBroken }
func (brokenStore) CountNotes() (int, error) { return 0, errBroken }

func testConf() *util.AppConfig {
	conf := &util.AppConfig{}
	conf.Conf.Host = "localhost"
	conf.Conf.HttpPort = 9999
	return conf
}

func seededStore(t *testing.T) *db.DB {
	t.Helper()
	store, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SeedPlaceholder(); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}
	return store
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestFeedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConf(), seededStore(t))

	w := get(router, "/feed")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Expected XML content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<rss") || !strings.Contains(body, "<channel>") {
		t.Errorf("Expected RSS document, got: %s", body)
	}
	if got := strings.Count(body, "<item>"); got != 14 {
		t.Errorf("Expected 14 items, got %d", got)
	}
	if !strings.Contains(body, "http://localhost:9999/feed/") {
		t.Error("Expected item links to point at the note route")
	}
}

func TestAtomRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConf(), seededStore(t))

	w := get(router, "/feed/atom")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<feed") || !strings.Contains(body, "http://www.w3.org/2005/Atom") {
		t.Errorf("Expected Atom document, got: %s", body)
	}
	if got := strings.Count(body, "<entry>"); got != 14 {
		t.Errorf("Expected 14 entries, got %d", got)
	}
	if !strings.Contains(body, "John Misskey") {
		t.Error("Expected author name in entries")
	}
}

func TestSingleNoteRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := seededStore(t)
	router := NewRouter(testConf(), store)

	pages, err := store.ReadPages()
	if err != nil {
		t.Fatalf("ReadPages failed: %v", err)
	}
	note := pages[1][0]

	w := get(router, "/feed/"+note.Id.String())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if strings.Count(body, "<item>") != 1 {
		t.Errorf("Expected a single item, got: %s", body)
	}
	if !strings.Contains(body, note.Id.String()) {
		t.Errorf("Expected note id %s in feed", note.Id)
	}
}

func TestSingleNoteRouteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConf(), seededStore(t))

	tests := []struct {
		name string
		path string
	}{
		{"invalid id", "/feed/not-a-uuid"},
		{"unknown id", "/feed/" + uuid.New().String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.path)
			if w.Code != http.StatusNotFound {
				t.Errorf("Expected 404, got %d", w.Code)
			}
			if w.Body.Len() != 0 {
				t.Errorf("Expected empty body, got %q", w.Body.String())
			}
		})
	}
}

func TestFeedRouteEmptyStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	w := get(NewRouter(testConf(), store), "/feed")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for an empty feed, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "<item>") {
		t.Error("Expected no items")
	}
}

func TestFeedRouteStoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConf(), brokenStore{})

	for _, path := range []string{"/feed", "/feed/atom", "/feed/" + uuid.New().String()} {
		if w := get(router, path); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConf(), seededStore(t))

	w := get(router, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Status  string `json:"status"`
		Notes   int    `json:"notes"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Notes != 14 || resp.Version != util.GetVersion() {
		t.Errorf("Unexpected health response: %+v", resp)
	}
}

func TestHealthzUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := get(NewRouter(testConf(), brokenStore{}), "/healthz")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", w.Code)
	}
}

func TestGzipCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConf(), seededStore(t))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/feed", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	router.ServeHTTP(w, req)

	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Expected gzip encoding, got %q", w.Header().Get("Content-Encoding"))
	}
}

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := NewServer(testConf(), brokenStore{})

	if srv.Addr != "localhost:9999" {
		t.Errorf("Expected addr localhost:9999, got %s", srv.Addr)
	}
	if srv.Handler == nil {
		t.Error("Expected router to be installed")
	}
}
