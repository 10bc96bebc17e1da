package handlers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JadedPigeon/tectoniccalc/internal/database"
)

// SQLStore is the Postgres-backed Store.
type SQLStore struct {
	*database.Queries
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{Queries: database.New(db), db: db}
}

func (s *SQLStore) InTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

var _ Store = (*SQLStore)(nil)
