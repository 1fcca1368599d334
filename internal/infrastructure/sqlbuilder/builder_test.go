package sqlbuilder_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/sqlbuilder"
)

func TestListCajas_SinFiltro(t *testing.T) {
	q, args, err := sqlbuilder.Postgres().ListCajas(repository.ListFilter{})
	require.NoError(t, err)
	assert.NotContains(t, q, "WHERE")
	assert.Contains(t, q, "ORDER BY serial")
	assert.Empty(t, args)
}

func TestListCajas_FiltrosPorDialecto(t *testing.T) {
	f := repository.ListFilter{Serial: "sn", Estatus: "inst"}

	q, args, err := sqlbuilder.Postgres().ListCajas(f)
	require.NoError(t, err)
	assert.Contains(t, q, `serial ILIKE $1 ESCAPE '\'`)
	assert.Contains(t, q, `estatus ILIKE $2 ESCAPE '\'`)
	assert.Equal(t, []any{"%sn%", "%inst%"}, args)

	q, args, err = sqlbuilder.SQLite().ListCajas(f)
	require.NoError(t, err)
	assert.Contains(t, q, `serial LIKE ? ESCAPE '\'`)
	assert.Len(t, args, 2)
}

func TestListCajas_EscapaComodines(t *testing.T) {
	_, args, err := sqlbuilder.SQLite().ListCajas(repository.ListFilter{Proyecto: `50%_x\`})
	require.NoError(t, err)
	assert.Equal(t, []any{`%50\%\_x\\%`}, args)
}

func TestInsertCaja_Returning(t *testing.T) {
	c := &entity.Caja{Serial: "SN1", TotaldelContrato: decimal.NewFromInt(10), FechaCreacion: time.Now()}
	q, args, err := sqlbuilder.Postgres().InsertCaja(c)
	require.NoError(t, err)
	assert.Contains(t, q, "INSERT INTO inventario_iptv")
	assert.Contains(t, q, "RETURNING id")
	assert.Len(t, args, 28)
}

func TestUpdateCaja_NoTocaCreacion(t *testing.T) {
	now := time.Now()
	c := &entity.Caja{Serial: "SN1", UsuarioModificador: "ed", FechaModificacion: &now}
	q, args, err := sqlbuilder.Postgres().UpdateCaja(c)
	require.NoError(t, err)
	assert.NotContains(t, q, "usuario_creacion")
	assert.NotContains(t, q, "fecha_creacion")
	assert.Contains(t, q, "WHERE serial = $")
	assert.Equal(t, "SN1", args[len(args)-1])
}
