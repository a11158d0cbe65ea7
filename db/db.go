package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deemkeen/keytan/domain"
	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// DB is the database struct.
type DB struct {
	db *sql.DB
}

var (
	dbInstance *DB
	dbErr      error
	dbOnce     sync.Once
)

// ErrNoteNotFound is returned when no note has the requested id.
var ErrNoteNotFound = errors.New("note not found")

const maxBusyRetries = 5

const (
	sqlCreateNotesTable = `CREATE TABLE IF NOT EXISTS notes(
                        id uuid NOT NULL PRIMARY KEY,
                        page int NOT NULL,
                        position int NOT NULL,
                        display_name varchar(255) NOT NULL,
                        handle varchar(255) NOT NULL,
                        body text,
                        created_at timestamp default current_timestamp,
                        UNIQUE(page, position)
                        )`
	sqlInsertNote     = `INSERT INTO notes(id, page, position, display_name, handle, body, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	sqlSelectAllNotes = `SELECT id, page, display_name, handle, body FROM notes ORDER BY page, position`
	sqlSelectNoteById = `SELECT id, page, display_name, handle, body FROM notes WHERE id = ?`
	sqlCountNotes     = `SELECT count(*) FROM notes`
)

// Open opens the sqlite database at path and makes sure the schema exists.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if path == ":memory:" {
		// every connection would get its own empty database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)

		var journalMode string
		if err := sqlDB.QueryRow("PRAGMA journal_mode=WAL").Scan(&journalMode); err != nil {
			log.Warn("Failed to enable WAL mode", "err", err)
		} else {
			log.Debug("Database journal mode", "mode", journalMode)
		}
		sqlDB.Exec("PRAGMA synchronous = NORMAL")
		sqlDB.Exec("PRAGMA busy_timeout = 5000")
	}

	d := &DB{db: sqlDB}
	if err := d.CreateDB(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// GetDB returns the process wide database, opening it on first use.
func GetDB(path string) (*DB, error) {
	dbOnce.Do(func() {
		dbInstance, dbErr = Open(path)
		if dbErr == nil {
			log.Info("Database initialized", "path", path)
		}
	})
	return dbInstance, dbErr
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) CreateDB() error {
	return db.wrapTransaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(sqlCreateNotesTable); err != nil {
			return fmt.Errorf("failed to create notes table: %w", err)
		}
		return nil
	})
}

// InsertPage stores notes as page number page, keeping their order.
func (db *DB) InsertPage(page int, notes []domain.Note) error {
	return db.wrapTransaction(func(tx *sql.Tx) error {
		return db.insertPage(tx, page, notes)
	})
}

// ReadPages returns every stored page in page order. Page numbers that
// were never written do not produce empty pages.
func (db *DB) ReadPages() ([][]domain.Note, error) {
	rows, err := db.db.Query(sqlSelectAllNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var pages [][]domain.Note
	lastPage := -1
	for rows.Next() {
		note, page, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		if len(pages) == 0 || page != lastPage {
			pages = append(pages, nil)
			lastPage = page
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	return pages, nil
}

func (db *DB) ReadNoteById(id uuid.UUID) (*domain.Note, error) {
	row := db.db.QueryRow(sqlSelectNoteById, id)
	note, _, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (db *DB) CountNotes() (int, error) {
	var count int
	if err := db.db.QueryRow(sqlCountNotes).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

// SeedPlaceholder fills an empty database with the placeholder feed. It
// reports whether anything was written.
func (db *DB) SeedPlaceholder() (bool, error) {
	seeded := false
	err := db.wrapTransaction(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow(sqlCountNotes).Scan(&count); err != nil {
			return fmt.Errorf("failed to count notes: %w", err)
		}
		if count > 0 {
			return nil
		}
		for i, notes := range domain.PlaceholderPages() {
			if err := db.insertPage(tx, i, notes); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		log.Info("Seeded database with placeholder feed")
	}
	return seeded, nil
}

func (db *DB) insertPage(tx *sql.Tx, page int, notes []domain.Note) error {
	now := time.Now()
	for position, note := range notes {
		var body sql.NullString
		if note.Body != domain.NoText {
			body = sql.NullString{String: note.Body, Valid: true}
		}
		_, err := tx.Exec(sqlInsertNote, note.Id, page, position, note.Author.DisplayName, note.Author.Handle, body, now)
		if err != nil {
			return fmt.Errorf("failed to insert note %s: %w", note.Id, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (domain.Note, int, error) {
	var (
		note domain.Note
		page int
		body sql.NullString
	)
	err := row.Scan(&note.Id, &page, &note.Author.DisplayName, &note.Author.Handle, &body)
	if err != nil {
		return domain.Note{}, 0, err
	}
	note.Body = domain.NoText
	if body.Valid {
		note.Body = body.String
	}
	return note, page, nil
}

func (db *DB) wrapTransaction(f func(tx *sql.Tx) error) error {
	for attempt := 1; ; attempt++ {
		err := db.runTransaction(f)
		var serr *sqlite.Error
		if err != nil && errors.As(err, &serr) && serr.Code() == sqlitelib.SQLITE_BUSY && attempt < maxBusyRetries {
			log.Debug("Database busy, retrying", "attempt", attempt)
			time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
			continue
		}
		return err
	}
}

func (db *DB) runTransaction(f func(tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("Error starting transaction", "err", err)
		return err
	}
	if err := f(tx); err != nil {
		tx.Rollback()
		log.Error("Error in transaction", "err", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("Error committing transaction", "err", err)
		return err
	}
	return nil
}
