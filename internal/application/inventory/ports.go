package inventory

import (
	"context"
	"io"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio atado a esa tx.
// Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.InventarioRepository) error) error
}

// SpreadsheetReader lee la primera hoja de un archivo de carga masiva.
// columns son las claves canónicas; los encabezados se emparejan contra ellas.
type SpreadsheetReader interface {
	Read(r io.Reader, columns []string) (*dto.SheetData, error)
}

// SpreadsheetWriter genera un archivo con una hoja, encabezado y filas.
type SpreadsheetWriter interface {
	Write(sheet string, columns []string, rows [][]any) ([]byte, error)
}

// TicketGenerator genera el PDF del tiquete de entrega de una caja.
type TicketGenerator interface {
	Generate(ctx context.Context, caja *entity.Caja) ([]byte, error)
}
