package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"abusetriage/internal/ports"
)

var _ ports.Store = (*DB)(nil)

// WithTransaction runs fn in a read-write transaction.
func (db *DB) WithTransaction(ctx context.Context, fn func(tx ports.Tx) error) error {
	return db.withTx(ctx, pgx.TxOptions{}, fn)
}

// WithReadOnlyTransaction runs fn in a read-only transaction so every read
// sees one snapshot.
func (db *DB) WithReadOnlyTransaction(ctx context.Context, fn func(tx ports.Tx) error) error {
	return db.withTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead}, fn)
}

func (db *DB) withTx(ctx context.Context, opts pgx.TxOptions, fn func(tx ports.Tx) error) (err error) {
	tx, err := db.Pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = fmt.Errorf("commit transaction: %w", cerr)
		}
	}()
	return fn(&txRepo{tx: tx})
}

// txRepo binds the repositories to one pgx transaction.
type txRepo struct {
	tx pgx.Tx
}

var _ ports.Tx = (*txRepo)(nil)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err carries SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}
