package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JadedPigeon/tectoniccalc/internal/database/migrations"
	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded schema migrations to db.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
