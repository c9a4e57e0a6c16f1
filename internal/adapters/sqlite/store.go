// Package sqlite implements the triage store on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"abusetriage/internal/ports"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// timeFormat is fixed width so that text ordering matches time ordering.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

type Store struct {
	db *sql.DB
}

var _ ports.Store = (*Store)(nil)

// Open opens the database at path and applies pending migrations.
func Open(ctx context.Context, path string, log logrus.FieldLogger) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(on)&_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := migrate(ctx, db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	// SQLite allows one writer; a single connection serializes transactions
	// instead of surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB, log logrus.FieldLogger) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		log.WithFields(logrus.Fields{"migration": r.Source.Path, "duration": r.Duration}).Debug("applied migration")
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	var one int
	return s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}

func (s *Store) WithTransaction(ctx context.Context, fn func(tx ports.Tx) error) error {
	return s.withTx(ctx, nil, fn)
}

func (s *Store) WithReadOnlyTransaction(ctx context.Context, fn func(tx ports.Tx) error) error {
	return s.withTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (s *Store) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx ports.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit transaction: %w", cerr)
		}
	}()
	return fn(&txRepo{tx: tx})
}

type txRepo struct {
	tx *sql.Tx
}

var _ ports.Tx = (*txRepo)(nil)

func isUniqueViolation(err error) bool {
	var serr *sqlitedrv.Error
	if errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t, nil
}
