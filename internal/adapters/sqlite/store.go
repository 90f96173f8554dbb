package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/domain"
	"folderswap/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// DatabaseFile is the store file name inside the config directory
	DatabaseFile = "folderswap.db"

	schemaVersion = "1"
)

// Store implements ports.ConfigStore using SQLite
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	dbPath string
}

// Ensure Store implements ConfigStore
var _ ports.ConfigStore = (*Store)(nil)

// Open opens (and creates if needed) the database at dbPath
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, errors.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Errorf("opening database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS directories (
			side TEXT PRIMARY KEY,
			path TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS keywords (
			position INTEGER PRIMARY KEY,
			word TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, errors.Errorf("setting up database: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, errors.Errorf("updating metadata: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", dbPath).Msg("sqlite store opened")
	return &Store{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadDirectories returns the stored pair; unset sides are empty
func (s *Store) LoadDirectories(ctx context.Context) (domain.DirectoryPair, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT side, path FROM directories`)
	if err != nil {
		return domain.DirectoryPair{}, errors.Errorf("querying directories: %w", err)
	}
	defer rows.Close()

	var pair domain.DirectoryPair
	for rows.Next() {
		var sideText, path string
		if err := rows.Scan(&sideText, &path); err != nil {
			return domain.DirectoryPair{}, errors.Errorf("scanning directory: %w", err)
		}
		side, err := domain.ParseSide(sideText)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Str("side", sideText).Msg("ignoring unknown directory side")
			continue
		}
		pair = pair.With(side, path)
	}
	if err := rows.Err(); err != nil {
		return domain.DirectoryPair{}, errors.Errorf("reading directories: %w", err)
	}
	return pair, nil
}

// SaveDirectories replaces both stored roots
func (s *Store) SaveDirectories(ctx context.Context, pair domain.DirectoryPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM directories`); err != nil {
		return errors.Errorf("clearing directories: %w", err)
	}
	for _, side := range []domain.Side{domain.SideSource, domain.SideTarget} {
		path := pair.Root(side)
		if path == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO directories (side, path) VALUES (?, ?)`, side.String(), path); err != nil {
			return errors.Errorf("storing %s directory: %w", side, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Errorf("committing directories: %w", err)
	}
	return nil
}

// LoadKeywords returns the stored keywords in registration order
func (s *Store) LoadKeywords(ctx context.Context) (domain.Keywords, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM keywords ORDER BY position`)
	if err != nil {
		return nil, errors.Errorf("querying keywords: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, errors.Errorf("scanning keyword: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Errorf("reading keywords: %w", err)
	}
	return domain.NewKeywords(words), nil
}

// SaveKeywords replaces the stored list, keeping the given order
func (s *Store) SaveKeywords(ctx context.Context, keywords domain.Keywords) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM keywords`); err != nil {
		return errors.Errorf("clearing keywords: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO keywords (position, word) VALUES (?, ?)`)
	if err != nil {
		return errors.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, word := range keywords {
		if _, err := stmt.ExecContext(ctx, i, word); err != nil {
			return errors.Errorf("storing keyword %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Errorf("committing keywords: %w", err)
	}
	return nil
}
