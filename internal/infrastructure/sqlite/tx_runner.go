package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	s *Storage
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Storage) *TxRunner {
	return &TxRunner{s: s}
}

// Run inicia la transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.InventarioRepository) error) error {
	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(newInventarioRepo(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
