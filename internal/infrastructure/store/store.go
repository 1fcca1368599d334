// Package store arma los repositorios según DB_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-iptv/pkg/config"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

// Store repositorios listos para inyectar en los casos de uso.
type Store struct {
	Users      repository.UserRepository
	Inventario repository.InventarioRepository
	Tx         inventory.TxRunner
	Ping       func(ctx context.Context) error
	close      func()
}

// Close libera la conexión subyacente.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta al motor configurado y aplica las migraciones embebidas.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones PostgreSQL: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Msg("base de datos lista")
		return &Store{
			Users:      postgres.NewUserRepository(pool),
			Inventario: postgres.NewInventarioRepository(pool),
			Tx:         postgres.NewTxRunner(pool),
			Ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("base de datos lista")
		return &Store{
			Users:      sqlite.NewUserRepository(s),
			Inventario: sqlite.NewInventarioRepository(s),
			Tx:         sqlite.NewTxRunner(s),
			Ping:       s.Ping,
			close:      func() { _ = s.Close() },
		}, nil
	}
	return nil, fmt.Errorf("driver de base de datos desconocido %q", cfg.Driver)
}
