package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/jhoicas/inventario-iptv/pkg/config"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

// Límites del pool. Cada petición HTTP usa a lo sumo una conexión.
const (
	poolMaxConns        = 10
	poolMinConns        = 1
	poolMaxConnLifetime = time.Hour
	poolMaxConnIdleTime = 30 * time.Minute
	pingTimeout         = 5 * time.Second
)

// NewPool crea el pool con el DSN de la configuración (DATABASE_URL o DB_HOST/DB_PORT/...)
// y verifica la conexión con un ping.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC(18,2) <-> shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Connect abre el pool reintentando hasta cfg.ConnectTimeout (la DB puede arrancar
// después que la API en docker-compose). Backoff 1s, 2s, 4s... tope de 5s.
func Connect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	deadline := time.Now().Add(cfg.ConnectTimeout)
	wait := time.Second
	for attempt := 1; ; attempt++ {
		pool, err := NewPool(ctx, cfg)
		if err == nil {
			return pool, nil
		}
		if time.Now().Add(wait).After(deadline) {
			return nil, fmt.Errorf("conectar a PostgreSQL tras %d intentos: %w", attempt, err)
		}
		log.Warn().Err(err).Int("intento", attempt).Dur("espera", wait).Msg("PostgreSQL no disponible, reintentando")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		if wait *= 2; wait > 5*time.Second {
			wait = 5 * time.Second
		}
	}
}
