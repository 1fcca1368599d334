package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/spreadsheet"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Código Cliente":   "codigocliente",
		"CodigoCliente":    "codigocliente",
		"Contrato_Liberty": "contratoliberty",
		" SERIAL ":         "serial",
		"tipoServicio":     "tiposervicio",
		"Razón  Social.":   "razonsocial",
	}
	for in, want := range cases {
		assert.Equal(t, want, spreadsheet.NormalizeHeader(in), in)
	}
}

// buildXLSX arma un libro en memoria con las filas dadas (la primera suele ser el encabezado).
func buildXLSX(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestRead_EncabezadosNormalizados(t *testing.T) {
	file := buildXLSX(t, [][]any{
		{},
		{"Código Cliente", "serial", "Columna Rara", "Total del Contrato"},
		{"C-01", "SN1", "x", 1500.5},
		{},
		{"", "SN2", "", ""},
	})

	sheet, err := spreadsheet.NewReader().Read(file, dto.CajaColumns)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, []string{dto.ColCodigoCliente, dto.ColSerial, dto.ColTotaldelContrato}, sheet.Columns)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, 3, sheet.Rows[0].Line)
	assert.Equal(t, "C-01", sheet.Rows[0].Cells[dto.ColCodigoCliente])
	assert.Equal(t, "SN1", sheet.Rows[0].Cells[dto.ColSerial])
	assert.Equal(t, "1500.5", sheet.Rows[0].Cells[dto.ColTotaldelContrato])
	assert.NotContains(t, sheet.Rows[0].Cells, "Columna Rara")

	assert.Equal(t, 5, sheet.Rows[1].Line)
	assert.Equal(t, "SN2", sheet.Rows[1].Cells[dto.ColSerial])
}

func TestRead_ArchivoInvalido(t *testing.T) {
	_, err := spreadsheet.NewReader().Read(strings.NewReader("no soy un xlsx"), dto.CajaColumns)
	assert.Error(t, err)
}

func TestWriteRead_IdaYVuelta(t *testing.T) {
	row := make([]any, len(dto.CajaColumns))
	for i := range row {
		row[i] = ""
	}
	row[0] = "Hotel Centro"
	row[11] = "SN1"
	row[16] = 3
	row[23] = 250.75

	data, err := spreadsheet.NewWriter().Write("Inventario", dto.CajaColumns, [][]any{row})
	require.NoError(t, err)

	sheet, err := spreadsheet.NewReader().Read(bytes.NewReader(data), dto.CajaColumns)
	require.NoError(t, err)
	assert.Equal(t, "Inventario", sheet.Name)
	assert.Equal(t, dto.CajaColumns, sheet.Columns)
	require.Len(t, sheet.Rows, 1)
	cells := sheet.Rows[0].Cells
	assert.Equal(t, "Hotel Centro", cells[dto.ColProyecto])
	assert.Equal(t, "SN1", cells[dto.ColSerial])
	assert.Equal(t, "3", cells[dto.ColCantidadDeCajasColocadasRevify])
	assert.Equal(t, "250.75", cells[dto.ColTotaldelContrato])
}
