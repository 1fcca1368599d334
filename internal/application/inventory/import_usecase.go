package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// ImportError rechazo de un archivo de carga masiva.
// Kind es domain.ErrInvalidInput (400) o domain.ErrDuplicate (409).
type ImportError struct {
	Kind    error
	Message string
	Rows    []dto.ImportRowError
}

func (e *ImportError) Error() string {
	if len(e.Rows) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d filas con error)", e.Message, len(e.Rows))
}

func (e *ImportError) Unwrap() error { return e.Kind }

// ImportUseCase carga masiva de cajas desde una hoja de cálculo.
//
// Todas las filas se validan antes de escribir; si alguna falla no se inserta nada.
// Los INSERT corren secuencialmente dentro de UNA transacción (todo o nada).
type ImportUseCase struct {
	txRunner TxRunner
	reader   SpreadsheetReader
	now      func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner TxRunner, reader SpreadsheetReader) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, reader: reader, now: func() time.Time { return time.Now().UTC() }}
}

// Import lee la primera hoja de r e inserta una caja por fila.
func (uc *ImportUseCase) Import(ctx context.Context, actor, filename string, r io.Reader) (*dto.ImportSummary, error) {
	sheet, err := uc.reader.Read(r, dto.CajaColumns)
	if err != nil {
		return nil, &ImportError{Kind: domain.ErrInvalidInput, Message: "no se pudo leer el archivo: " + err.Error()}
	}
	if !sheet.HasColumn(dto.ColSerial) {
		return nil, &ImportError{Kind: domain.ErrInvalidInput, Message: "el encabezado no contiene la columna SERIAL"}
	}
	if len(sheet.Rows) == 0 {
		return nil, &ImportError{Kind: domain.ErrInvalidInput, Message: "el archivo no contiene filas de datos"}
	}

	now := uc.now()
	cajas := make([]*entity.Caja, 0, len(sheet.Rows))
	lines := make([]int, 0, len(sheet.Rows))
	var rowErrs []dto.ImportRowError
	seen := make(map[string]int, len(sheet.Rows))

	for _, row := range sheet.Rows {
		req, errs := rowToRequest(row)
		if err := dto.Validate(&req); err != nil {
			errs = append(errs, dto.ValidationMessages(err)...)
		}
		caja := requestToCaja(req)
		if caja.Serial != "" {
			if first, dup := seen[caja.Serial]; dup {
				errs = append(errs, fmt.Sprintf("SERIAL repetido en el archivo (fila %d)", first))
			} else {
				seen[caja.Serial] = row.Line
			}
		}
		for _, e := range errs {
			rowErrs = append(rowErrs, dto.ImportRowError{Fila: row.Line, Serial: caja.Serial, Error: e})
		}
		caja.UsuarioCreacion = actor
		caja.FechaCreacion = now
		cajas = append(cajas, caja)
		lines = append(lines, row.Line)
	}
	if len(rowErrs) > 0 {
		return nil, &ImportError{Kind: domain.ErrInvalidInput, Message: "el archivo tiene filas inválidas", Rows: rowErrs}
	}

	err = uc.txRunner.Run(ctx, func(repo repository.InventarioRepository) error {
		for i, c := range cajas {
			if err := repo.Create(ctx, c); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return &ImportError{
						Kind:    domain.ErrDuplicate,
						Message: "el archivo contiene un serial que ya existe en el inventario",
						Rows:    []dto.ImportRowError{{Fila: lines[i], Serial: c.Serial, Error: "SERIAL ya existe"}},
					}
				}
				return fmt.Errorf("importar fila %d: %w", lines[i], err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ImportSummary{
		LoteID:      uuid.New().String(),
		Archivo:     filename,
		Hoja:        sheet.Name,
		FilasLeidas: len(sheet.Rows),
		Insertadas:  len(cajas),
	}, nil
}

// rowToRequest convierte una fila y acumula los errores de formato numérico.
// Anchos y campos requeridos los valida dto.Validate, igual que en la API.
func rowToRequest(row dto.SheetRow) (dto.CajaRequest, []string) {
	cell := func(key string) string { return strings.TrimSpace(row.Cells[key]) }
	var errs []string

	money := func(key string) decimal.Decimal {
		d, err := parseDecimal(cell(key))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q no es un número", key, cell(key)))
		}
		return d
	}

	req := dto.CajaRequest{
		Proyecto:                 cell(dto.ColProyecto),
		Estatus:                  cell(dto.ColEstatus),
		ContratoLiberty:          cell(dto.ColContratoLiberty),
		CodigoClienteBlueSAT:     cell(dto.ColCodigoClienteBlueSAT),
		NombreContratoSolicitado: cell(dto.ColNombreContratoSolicitado),
		TipoContratacion:         cell(dto.ColTipoContratacion),
		EstatusContrato:          cell(dto.ColEstatusContrato),
		CodigoCliente:            cell(dto.ColCodigoCliente),
		RazonSocial:              cell(dto.ColRazonSocial),
		UbicacionFinal:           cell(dto.ColUbicacionFinal),
		TiqueteDeEntrega:         cell(dto.ColTiqueteDeEntrega),
		Serial:                   cell(dto.ColSerial),
		MAC:                      cell(dto.ColMAC),
		Observaciones:            cell(dto.ColObservaciones),
		ContratoFacturacion:      cell(dto.ColContratoFacturacion),
		TipoServicio:             cell(dto.ColTipoServicio),
	}

	n, err := parseCantidad(cell(dto.ColCantidadDeCajasColocadasRevify))
	if err != nil {
		errs = append(errs, fmt.Sprintf("%s: %q no es un entero no negativo", dto.ColCantidadDeCajasColocadasRevify, cell(dto.ColCantidadDeCajasColocadasRevify)))
	}
	req.CantidadDeCajasColocadasRevify = n

	req.PrecioIPTVPrincipalRevify = money(dto.ColPrecioIPTVPrincipalRevify)
	req.PrecioIPTVAdicionalRevify = money(dto.ColPrecioIPTVAdicionalRevify)
	req.PrecioIPTVPrincipalLiberty = money(dto.ColPrecioIPTVPrincipalLiberty)
	req.PrecioIPTVAdicionalLiberty = money(dto.ColPrecioIPTVAdicionalLiberty)
	req.PreciodeConvertidorPrincipalLiberty = money(dto.ColPreciodeConvertidorPrincipalLiberty)
	req.PreciodeConvertidorAdicionalLiberty = money(dto.ColPreciodeConvertidorAdicionalLiberty)
	req.TotaldelContrato = money(dto.ColTotaldelContrato)

	return req, errs
}

// parseDecimal acepta "", "1500", "1500.50", "$ 1,500.50", "1.500,50" y "1500,50".
// Vacío es cero. Con punto y coma a la vez, el último que aparece es el decimal.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer("$", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	return decimal.NewFromString(s)
}

// parseCantidad acepta enteros y valores como "3.0" que exporta la hoja.
func parseCantidad(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negativo")
		}
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) || d.IsNegative() {
		return 0, fmt.Errorf("no entero")
	}
	return int(d.IntPart()), nil
}
