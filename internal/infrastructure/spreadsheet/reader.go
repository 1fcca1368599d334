// Package spreadsheet lee y escribe archivos xlsx con excelize.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
)

// Reader lee la primera hoja de un xlsx.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// Read toma la primera fila no vacía como encabezado y devuelve el resto como filas
// indexadas por clave canónica. Las filas completamente vacías se omiten.
func (Reader) Read(r io.Reader, columns []string) (*dto.SheetData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	name := sheets[0]

	// RawCellValue: números sin formato de celda ("1500.5" y no "$1,500.50").
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", name, err)
	}

	out := &dto.SheetData{Name: name}
	headerAt := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return out, nil
	}

	idx, found := headerIndex(rows[headerAt], columns)
	out.Columns = found

	for i := headerAt + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		cells := make(map[string]string, len(idx))
		for col, key := range idx {
			if col < len(row) {
				cells[key] = row[col]
			}
		}
		out.Rows = append(out.Rows, dto.SheetRow{Line: i + 1, Cells: cells})
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
