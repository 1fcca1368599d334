package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain"
)

func sampleRequest(serial string) dto.CajaRequest {
	return dto.CajaRequest{
		Proyecto:                       "Hotel Centro",
		Estatus:                        "Instalada",
		Serial:                         serial,
		MAC:                            "AA:BB:CC:00:11:22",
		TipoServicio:                   "IPTV",
		CantidadDeCajasColocadasRevify: 2,
		PrecioIPTVPrincipalRevify:      decimal.RequireFromString("12.50"),
		TotaldelContrato:               decimal.RequireFromString("250.00"),
	}
}

func TestCreate_GetBySerial_DevuelveCamposEscritos(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "admin1", sampleRequest("SN1"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "admin1", created.UsuarioCreacion)
	assert.False(t, created.FechaCreacion.IsZero())

	got, err := uc.GetBySerial(ctx, "SN1")
	require.NoError(t, err)
	assert.Equal(t, "Hotel Centro", got.Proyecto)
	assert.Equal(t, "AA:BB:CC:00:11:22", got.MAC)
	assert.Equal(t, 2, got.CantidadDeCajasColocadasRevify)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.PrecioIPTVPrincipalRevify))
	assert.True(t, decimal.RequireFromString("250").Equal(got.TotaldelContrato))
}

func TestCreate_SerialDuplicado(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, "a", sampleRequest("SN1"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, "a", sampleRequest("SN1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_SerialEnBlanco(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	_, err := uc.Create(context.Background(), "a", sampleRequest("   "))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetBySerial_NoExiste(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	_, err := uc.GetBySerial(context.Background(), "NADA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_SobrescribeYAudita(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewInventarioUseCase(repo, nil, nil)
	ctx := context.Background()
	_, err := uc.Create(ctx, "creador", sampleRequest("SN1"))
	require.NoError(t, err)

	in := sampleRequest("OTRO") // el serial de la ruta prevalece
	in.Estatus = "Retirada"
	in.MAC = ""
	updated, err := uc.Update(ctx, "editor", "SN1", in)
	require.NoError(t, err)

	assert.Equal(t, "SN1", updated.Serial)
	assert.Equal(t, "Retirada", updated.Estatus)
	assert.Empty(t, updated.MAC, "sobrescritura completa de columnas")
	assert.Equal(t, "creador", updated.UsuarioCreacion)
	assert.Equal(t, "editor", updated.UsuarioModificador)
	require.NotNil(t, updated.FechaModificacion)

	_, err = uc.GetBySerial(ctx, "OTRO")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_NoExiste_NoEscribe(t *testing.T) {
	repo := newMemRepo()
	uc := inventory.NewInventarioUseCase(repo, nil, nil)

	_, err := uc.Update(context.Background(), "editor", "FANTASMA", sampleRequest("FANTASMA"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.cajas)
}

func TestDelete_DosVeces(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	ctx := context.Background()
	_, err := uc.Create(ctx, "a", sampleRequest("SN1"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "SN1"))
	list, err := uc.List(ctx, dto.ListFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, uc.Delete(ctx, "SN1"), domain.ErrNotFound)
}

func TestList_FiltrosYOrden(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	ctx := context.Background()
	for _, s := range []string{"SN3", "SN1", "XX9"} {
		_, err := uc.Create(ctx, "a", sampleRequest(s))
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, dto.ListFilterRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "SN1", all[0].Serial)

	sn, err := uc.List(ctx, dto.ListFilterRequest{Serial: "sn"})
	require.NoError(t, err)
	assert.Len(t, sn, 2)
}

func TestExport_UsaColumnasCanonicas(t *testing.T) {
	w := &captureWriter{}
	uc := inventory.NewInventarioUseCase(newMemRepo(), w, nil)
	ctx := context.Background()
	_, err := uc.Create(ctx, "a", sampleRequest("SN1"))
	require.NoError(t, err)

	data, err := uc.Export(ctx, dto.ListFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, inventory.ExportSheetName, w.sheet)
	assert.Equal(t, dto.CajaColumns, w.columns)
	require.Len(t, w.rows, 1)
	require.Len(t, w.rows[0], len(dto.CajaColumns))
	assert.Equal(t, "SN1", w.rows[0][11])
}

func TestDeliveryTicket(t *testing.T) {
	tk := &stubTicket{}
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, tk)
	ctx := context.Background()

	_, err := uc.DeliveryTicket(ctx, "SN1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, "a", sampleRequest("SN1"))
	require.NoError(t, err)
	pdf, err := uc.DeliveryTicket(ctx, "SN1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "SN1", tk.serial)
}

func TestSummary(t *testing.T) {
	uc := inventory.NewInventarioUseCase(newMemRepo(), nil, nil)
	ctx := context.Background()
	a := sampleRequest("SN1")
	b := sampleRequest("SN2")
	b.Estatus = ""
	b.TotaldelContrato = decimal.RequireFromString("100.255")
	for _, in := range []dto.CajaRequest{a, b} {
		_, err := uc.Create(ctx, "a", in)
		require.NoError(t, err)
	}

	res, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCajas)
	assert.Equal(t, "350.26", res.TotalContratos.StringFixed(2))
	assert.ElementsMatch(t, []dto.ConteoDTO{
		{Clave: "Instalada", Cantidad: 1},
		{Clave: "Sin especificar", Cantidad: 1},
	}, res.PorEstatus)
	assert.Equal(t, []dto.ConteoDTO{{Clave: "Hotel Centro", Cantidad: 2}}, res.PorProyecto)
}
