package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// ExportSheetName nombre de la hoja del archivo exportado.
const ExportSheetName = "Inventario"

// InventarioUseCase CRUD de cajas IPTV más exportación y tiquete de entrega.
// Las cajas se identifican externamente por serial.
type InventarioUseCase struct {
	repo   repository.InventarioRepository
	writer SpreadsheetWriter
	ticket TicketGenerator
	now    func() time.Time
}

// NewInventarioUseCase construye el caso de uso. writer y ticket pueden ser nil
// si el proceso no expone exportación o PDF (p. ej. el seed).
func NewInventarioUseCase(repo repository.InventarioRepository, writer SpreadsheetWriter, ticket TicketGenerator) *InventarioUseCase {
	return &InventarioUseCase{repo: repo, writer: writer, ticket: ticket, now: func() time.Time { return time.Now().UTC() }}
}

// List devuelve todas las cajas ordenadas por serial; el filtro es opcional.
func (uc *InventarioUseCase) List(ctx context.Context, in dto.ListFilterRequest) ([]dto.CajaResponse, error) {
	cajas, err := uc.repo.List(ctx, toFilter(in))
	if err != nil {
		return nil, err
	}
	out := make([]dto.CajaResponse, 0, len(cajas))
	for _, c := range cajas {
		out = append(out, *cajaToResponse(c))
	}
	return out, nil
}

// GetBySerial devuelve la caja o ErrNotFound.
func (uc *InventarioUseCase) GetBySerial(ctx context.Context, serial string) (*dto.CajaResponse, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, domain.ErrNotFound
	}
	c, err := uc.repo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return cajaToResponse(c), nil
}

// Create inserta una caja nueva. Un serial repetido devuelve ErrDuplicate (constraint UNIQUE).
func (uc *InventarioUseCase) Create(ctx context.Context, actor string, in dto.CajaRequest) (*dto.CajaResponse, error) {
	caja := requestToCaja(in)
	if caja.Serial == "" {
		return nil, fmt.Errorf("%w: SERIAL es requerido", domain.ErrInvalidInput)
	}
	caja.UsuarioCreacion = actor
	caja.FechaCreacion = uc.now()
	if err := uc.repo.Create(ctx, caja); err != nil {
		return nil, err
	}
	return cajaToResponse(caja), nil
}

// Update sobrescribe todas las columnas editables de la caja con ese serial.
// El serial de la ruta prevalece sobre el del body. ErrNotFound si no existe.
func (uc *InventarioUseCase) Update(ctx context.Context, actor, serial string, in dto.CajaRequest) (*dto.CajaResponse, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, domain.ErrNotFound
	}
	caja := requestToCaja(in)
	caja.Serial = serial
	now := uc.now()
	caja.UsuarioModificador = actor
	caja.FechaModificacion = &now
	if err := uc.repo.Update(ctx, caja); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// borrada entre el UPDATE y la lectura
		return nil, domain.ErrNotFound
	}
	return cajaToResponse(updated), nil
}

// Delete elimina la caja. ErrNotFound si no afecta filas, así que un segundo Delete falla.
func (uc *InventarioUseCase) Delete(ctx context.Context, serial string) error {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, serial)
}

// Export genera el xlsx del inventario (mismo filtro que List).
// El archivo usa los encabezados canónicos, así que se puede volver a importar.
func (uc *InventarioUseCase) Export(ctx context.Context, in dto.ListFilterRequest) ([]byte, error) {
	if uc.writer == nil {
		return nil, fmt.Errorf("inventario: exportación no configurada")
	}
	cajas, err := uc.repo.List(ctx, toFilter(in))
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(cajas))
	for _, c := range cajas {
		rows = append(rows, cajaToRow(c))
	}
	data, err := uc.writer.Write(ExportSheetName, dto.CajaColumns, rows)
	if err != nil {
		return nil, fmt.Errorf("inventario: exportar: %w", err)
	}
	return data, nil
}

// DeliveryTicket genera el PDF del tiquete de entrega de la caja.
func (uc *InventarioUseCase) DeliveryTicket(ctx context.Context, serial string) ([]byte, error) {
	if uc.ticket == nil {
		return nil, fmt.Errorf("inventario: generador de tiquetes no configurado")
	}
	serial = strings.TrimSpace(serial)
	c, err := uc.repo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	pdf, err := uc.ticket.Generate(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("inventario: tiquete %s: %w", serial, err)
	}
	return pdf, nil
}

func toFilter(in dto.ListFilterRequest) repository.ListFilter {
	return repository.ListFilter{
		Serial:   strings.TrimSpace(in.Serial),
		Proyecto: strings.TrimSpace(in.Proyecto),
		Estatus:  strings.TrimSpace(in.Estatus),
	}
}
