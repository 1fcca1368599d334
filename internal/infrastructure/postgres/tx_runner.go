package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la carga masiva en una sola transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run hace Commit si fn devuelve nil y Rollback en cualquier otro caso.
// El error de fn se devuelve sin envolver para que el caso de uso pueda usar errors.As.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.InventarioRepository) error) error {
	var fnErr error
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		fnErr = fn(NewInventarioRepository(tx))
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("transacción de importación: %w", err)
	}
	return nil
}
