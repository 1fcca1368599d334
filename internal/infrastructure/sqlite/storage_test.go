package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()
	s, err := New(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	return s, func() { _ = s.Close() }
}

func newCaja(serial string) *entity.Caja {
	return &entity.Caja{
		Proyecto:                       "Hotel Centro",
		Estatus:                        "Instalada",
		Serial:                         serial,
		MAC:                            "AA:BB:CC:00:11:22",
		CantidadDeCajasColocadasRevify: 2,
		PrecioIPTVPrincipalRevify:      decimal.RequireFromString("12.50"),
		TotaldelContrato:               decimal.RequireFromString("250.75"),
		UsuarioCreacion:                "admin1",
		FechaCreacion:                  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	repo := NewUserRepository(s)

	u := &entity.User{NombreUsuario: "alice", Email: "alice@x.com", PasswordHash: "hash", Rol: entity.RoleDefault, FechaCreacion: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.NombreUsuario)

	missing, err := repo.FindByEmail(ctx, "nadie@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	dup := &entity.User{NombreUsuario: "otra", Email: "alice@x.com", PasswordHash: "h", Rol: entity.RoleDefault, FechaCreacion: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailAlreadyExists)
}

func TestInventarioRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	repo := NewInventarioRepository(s)

	c := newCaja("SN1")
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	got, err := repo.GetBySerial(ctx, "SN1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hotel Centro", got.Proyecto)
	assert.Equal(t, 2, got.CantidadDeCajasColocadasRevify)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.PrecioIPTVPrincipalRevify), got.PrecioIPTVPrincipalRevify.String())
	assert.True(t, decimal.RequireFromString("250.75").Equal(got.TotaldelContrato))
	assert.True(t, c.FechaCreacion.Equal(got.FechaCreacion))
	assert.Nil(t, got.FechaModificacion)

	assert.ErrorIs(t, repo.Create(ctx, newCaja("SN1")), domain.ErrDuplicate)

	now := time.Now().UTC()
	upd := newCaja("SN1")
	upd.Estatus = "Retirada"
	upd.UsuarioCreacion = "no-debe-cambiar"
	upd.UsuarioModificador = "editor"
	upd.FechaModificacion = &now
	require.NoError(t, repo.Update(ctx, upd))

	got, err = repo.GetBySerial(ctx, "SN1")
	require.NoError(t, err)
	assert.Equal(t, "Retirada", got.Estatus)
	assert.Equal(t, "admin1", got.UsuarioCreacion)
	assert.Equal(t, "editor", got.UsuarioModificador)
	require.NotNil(t, got.FechaModificacion)

	assert.ErrorIs(t, repo.Update(ctx, newCaja("NADA")), domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "SN1"))
	assert.ErrorIs(t, repo.Delete(ctx, "SN1"), domain.ErrNotFound)
	got, err = repo.GetBySerial(ctx, "SN1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInventarioRepo_ListYResumen(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	repo := NewInventarioRepository(s)

	a, b, c := newCaja("SN2"), newCaja("sn1"), newCaja("XX9")
	c.Proyecto = "Clínica Norte"
	c.Estatus = "Bodega"
	for _, caja := range []*entity.Caja{a, b, c} {
		require.NoError(t, repo.Create(ctx, caja))
	}

	all, err := repo.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "SN2", all[0].Serial, "orden binario por serial")

	sn, err := repo.List(ctx, repository.ListFilter{Serial: "SN"})
	require.NoError(t, err)
	assert.Len(t, sn, 2, "LIKE no distingue mayúsculas")

	bodega, err := repo.List(ctx, repository.ListFilter{Estatus: "bodega"})
	require.NoError(t, err)
	require.Len(t, bodega, 1)
	assert.Equal(t, "XX9", bodega[0].Serial)

	byEstatus, err := repo.CountByEstatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []repository.GroupCount{{Key: "Instalada", Count: 2}, {Key: "Bodega", Count: 1}}, byEstatus)

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Cajas)
	assert.Equal(t, "752.25", totals.TotalDelContrato.StringFixed(2))
}

func TestInventarioRepo_ListComodinesLiterales(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	repo := NewInventarioRepository(s)

	for _, serial := range []string{"SN_01", "SN-01", "SN01", "SN%01"} {
		require.NoError(t, repo.Create(ctx, newCaja(serial)))
	}

	got, err := repo.List(ctx, repository.ListFilter{Serial: "SN_01"})
	require.NoError(t, err)
	require.Len(t, got, 1, "_ no actúa como comodín")
	assert.Equal(t, "SN_01", got[0].Serial)

	got, err = repo.List(ctx, repository.ListFilter{Serial: "n%0"})
	require.NoError(t, err)
	require.Len(t, got, 1, "% no actúa como comodín")
	assert.Equal(t, "SN%01", got[0].Serial)
}

func TestInventarioRepo_TotalsVacio(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	totals, err := NewInventarioRepository(s).Totals(context.Background())
	require.NoError(t, err)
	assert.Zero(t, totals.Cajas)
	assert.True(t, totals.TotalDelContrato.IsZero())
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	runner := NewTxRunner(s)
	repo := NewInventarioRepository(s)

	boom := errors.New("falla a mitad")
	err := runner.Run(ctx, func(tx repository.InventarioRepository) error {
		require.NoError(t, tx.Create(ctx, newCaja("SN1")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetBySerial(ctx, "SN1")
	require.NoError(t, err)
	assert.Nil(t, got, "rollback descarta el insert")

	err = runner.Run(ctx, func(tx repository.InventarioRepository) error {
		return tx.Create(ctx, newCaja("SN1"))
	})
	require.NoError(t, err)
	got, err = repo.GetBySerial(ctx, "SN1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
