package commands

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/deemkeen/keytan/db"
	"github.com/deemkeen/keytan/domain"
	"github.com/deemkeen/keytan/ui"
	"github.com/deemkeen/keytan/util"
	"github.com/spf13/cobra"
)

type options struct {
	logLevel string
	noLogin  bool
}

func New() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          util.Name,
		Short:        "A terminal timeline for Misskey style feeds.",
		SilenceUsage: true,
		Example: `
keytan
keytan --no-login
keytan serve
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noLogin, "no-login", false, "skip the login screen and open the timeline")

	addCommands(cmd, opts)
	return cmd
}

func addCommands(topLevel *cobra.Command, opts *options) {
	addServe(topLevel, opts)
	addVersion(topLevel)
}

// loadConf reads the configuration and applies the command line overrides.
func loadConf(opts *options) (*util.AppConfig, error) {
	conf, err := util.ReadConf()
	if err != nil {
		return nil, fmt.Errorf("could not read configuration: %w", err)
	}
	if opts.logLevel != "" {
		conf.Conf.LogLevel = opts.logLevel
	}
	if opts.noLogin {
		conf.Conf.WithLogin = false
	}
	return conf, nil
}

func openStore(conf *util.AppConfig) (*db.DB, error) {
	return db.GetDB(util.ResolveFilePath(conf.Conf.DbPath))
}

// loadPages returns the stored feed, seeding an empty store first. Without
// a usable store the placeholder feed is shown instead.
func loadPages(store *db.DB) [][]domain.Note {
	if store == nil {
		return domain.PlaceholderPages()
	}
	if _, err := store.SeedPlaceholder(); err != nil {
		log.Warn("Could not seed database, using placeholder feed", "err", err)
		return domain.PlaceholderPages()
	}
	pages, err := store.ReadPages()
	if err != nil {
		log.Warn("Could not read notes, using placeholder feed", "err", err)
		return domain.PlaceholderPages()
	}
	if len(pages) == 0 {
		return domain.PlaceholderPages()
	}
	return pages
}

// setupLocalLogging loads the configuration with logging silenced, then
// sends the default logger to the log file. The terminal belongs to the
// TUI, so nothing may be printed there.
func setupLocalLogging(opts *options) (*util.AppConfig, io.Closer, error) {
	log.SetOutput(io.Discard)

	conf, err := loadConf(opts)
	if err != nil {
		return nil, nil, err
	}

	f, err := util.OpenLogFile(conf)
	if err != nil {
		return nil, nil, err
	}
	if err := util.SetupLogger(conf, f); err != nil {
		f.Close()
		return nil, nil, err
	}
	return conf, f, nil
}

func runLocal(opts *options) error {
	conf, logFile, err := setupLocalLogging(opts)
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, err := openStore(conf)
	if err != nil {
		log.Warn("Database unavailable", "err", err)
		store = nil
	}
	pages := loadPages(store)
	if store != nil {
		defer store.Close()
	}

	log.Info("Starting local session", "pages", len(pages), "login", conf.Conf.WithLogin)
	p := tea.NewProgram(ui.NewModel(pages, conf.Conf.WithLogin, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("timeline exited with error: %w", err)
	}
	return nil
}
