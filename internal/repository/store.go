package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Store owns the connection pool and opens units of work on it.
type Store struct {
	db              *sql.DB
	defaultCurrency string
}

func NewStore(db *sql.DB, defaultCurrency string) *Store {
	return &Store{db: db, defaultCurrency: defaultCurrency}
}

// Repositories returns repositories running outside of any transaction,
// for reads.
func (s *Store) Repositories() *Repositories {
	return New(s.db, s.defaultCurrency)
}

// WithinTransaction runs fn against repositories bound to a single database
// transaction. The transaction commits only when fn returns nil; any error,
// including a failed commit, leaves nothing behind.
func (s *Store) WithinTransaction(ctx context.Context, fn func(r *Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(New(tx, s.defaultCurrency)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
