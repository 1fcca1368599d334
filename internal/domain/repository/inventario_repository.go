package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
)

// ListFilter filtros opcionales del listado; vacío = tabla completa.
// Cada campo es una coincidencia parcial sin distinguir mayúsculas.
type ListFilter struct {
	Serial   string
	Proyecto string
	Estatus  string
}

// IsEmpty indica si no hay ningún filtro activo.
func (f ListFilter) IsEmpty() bool {
	return f.Serial == "" && f.Proyecto == "" && f.Estatus == ""
}

// GroupCount conteo de cajas agrupado por un campo de texto libre.
type GroupCount struct {
	Key   string
	Count int
}

// Totals agregados globales del inventario.
type Totals struct {
	Cajas            int
	TotalDelContrato decimal.Decimal
}

// InventarioRepository define el puerto de persistencia para las cajas IPTV.
type InventarioRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*entity.Caja, error)
	// GetBySerial devuelve (nil, nil) si no existe.
	GetBySerial(ctx context.Context, serial string) (*entity.Caja, error)
	// Create asigna caja.ID. ErrDuplicate si el serial ya existe.
	Create(ctx context.Context, caja *entity.Caja) error
	// Update sobrescribe todas las columnas editables. ErrNotFound si no afecta filas.
	Update(ctx context.Context, caja *entity.Caja) error
	// Delete ErrNotFound si no afecta filas.
	Delete(ctx context.Context, serial string) error

	CountByEstatus(ctx context.Context) ([]GroupCount, error)
	CountByProyecto(ctx context.Context) ([]GroupCount, error)
	Totals(ctx context.Context) (Totals, error)
}
