// Package sqlite implementa los repositorios sobre SQLite (modernc.org/sqlite, sin cgo).
// Sirve para desarrollo local (DB_DRIVER=sqlite) y para los tests con ":memory:".
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // driver "sqlite"

	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage conexión SQLite con las migraciones aplicadas.
type Storage struct {
	db *sql.DB
}

// New abre la base en dbPath (":memory:" para tests) y aplica las migraciones.
// La salida de goose va a log.
func New(ctx context.Context, dbPath string, log *logger.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Un solo escritor; con ":memory:" además cada conexión sería una base distinta.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	s := &Storage{db: db}
	if err := s.migrate(log); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Storage) migrate(log *logger.Logger) error {
	goose.SetLogger(log.Printer("goose"))
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping verifica la conexión (health).
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// querier lo cumplen *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
