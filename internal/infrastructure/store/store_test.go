package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/store"
	"github.com/jhoicas/inventario-iptv/pkg/config"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping(ctx))
	u := &entity.User{NombreUsuario: "a", Email: "a@example.com", PasswordHash: "x", Rol: entity.RoleAdmin}
	require.NoError(t, s.Users.Create(ctx, u))
	assert.NotZero(t, u.ID)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), config.DBConfig{Driver: "oracle"}, logger.Nop())
	assert.Error(t, err)
}
