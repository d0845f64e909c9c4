package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/moodctl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
	_ "modernc.org/sqlite"
)

// Supported database/sql drivers.
const (
	DriverLibSQL  = "libsql"
	DriverModernc = "modernc"
)

// Store implements storage.Slot using a single SQLite table.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend using the libSQL driver.
func New(dataDir string) (*Store, error) {
	return NewWithDriver(dataDir, DriverLibSQL)
}

// NewWithDriver creates a new SQLite storage backend with the named driver:
// DriverLibSQL (Turso/libSQL, cgo) or DriverModernc (pure Go).
func NewWithDriver(dataDir, driver string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "moodctl.db")
	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case DriverLibSQL, "":
		db, err = sql.Open("libsql", "file:"+dbPath)
	case DriverModernc:
		db, err = sql.Open("sqlite", dbPath)
	default:
		return nil, fmt.Errorf("%w: unknown sqlite driver %q", storage.ErrValidation, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. libSQL answers the pragma with a row, so use Query.
	rows, err := db.Query("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}
	rows.Close()

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			key        TEXT PRIMARY KEY CHECK(length(trim(key)) > 0),
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%w: querying slot: %v", storage.ErrStorage, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("%w: writing slot: %v", storage.ErrStorage, err)
	}
	return nil
}
