package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/deemkeen/keytan/db"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/util"
)

func TestVersionCommand(t *testing.T) {
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != util.GetNameAndVersion() {
		t.Errorf("Expected %q, got %q", util.GetNameAndVersion(), got)
	}
}

func TestSubcommands(t *testing.T) {
	cmd := New()

	for _, name := range []string{"serve", "version"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("Expected subcommand %s to be registered", name)
		}
	}

	for _, flag := range []string{"log-level", "no-login"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Expected persistent flag --%s", flag)
		}
	}
}

func TestLoadConfOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	conf, err := loadConf(&options{logLevel: "debug", noLogin: true})
	if err != nil {
		t.Fatalf("loadConf failed: %v", err)
	}

	if conf.Conf.LogLevel != "debug" {
		t.Errorf("Expected log level override, got %q", conf.Conf.LogLevel)
	}
	if conf.Conf.WithLogin {
		t.Error("Expected --no-login to disable the login screen")
	}
}

func TestLoadPagesWithoutStore(t *testing.T) {
	pages := loadPages(nil)

	if len(pages) != 2 || len(pages[0]) != 10 || len(pages[1]) != 4 {
		t.Errorf("Expected placeholder feed, got %d pages", len(pages))
	}
}

func TestLoadPagesSeedsEmptyStore(t *testing.T) {
	store, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	first := loadPages(store)
	second := loadPages(store)

	if len(first) != 2 || len(first[0]) != 10 {
		t.Fatalf("Expected seeded feed, got %d pages", len(first))
	}
	if first[0][0].Id != second[0][0].Id {
		t.Error("Expected stored notes to be reused on the next load")
	}
}

func TestLoadPagesKeepsStoredFeed(t *testing.T) {
	store, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	text := "only note"
	note := domain.NewNote(domain.User{DisplayName: "Ann", Handle: "ann@example.com"}, &text)
	if err := store.InsertPage(0, []domain.Note{note}); err != nil {
		t.Fatalf("InsertPage failed: %v", err)
	}

	pages := loadPages(store)
	if len(pages) != 1 || len(pages[0]) != 1 || pages[0][0].Id != note.Id {
		t.Errorf("Expected the stored feed, got %d pages", len(pages))
	}
}

func TestSetupLocalLoggingKeepsTerminalQuiet(t *testing.T) {
	var terminal bytes.Buffer
	log.SetDefault(log.New(&terminal))
	defer log.SetDefault(log.New(os.Stderr))

	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	// no config file, so loading it logs about the embedded defaults
	conf, logFile, err := setupLocalLogging(&options{})
	if err != nil {
		t.Fatalf("setupLocalLogging failed: %v", err)
	}
	defer logFile.Close()

	log.Info("after setup")

	if terminal.Len() != 0 {
		t.Errorf("Expected nothing on the terminal, got: %s", terminal.String())
	}

	written, err := os.ReadFile(filepath.Join(dir, conf.Conf.LogFile))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(written), "after setup") {
		t.Errorf("Expected later logs in the log file, got: %s", written)
	}
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
