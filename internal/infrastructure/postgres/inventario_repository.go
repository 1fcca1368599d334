package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/sqlbuilder"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación del puerto InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q  Querier
	sb sqlbuilder.Builder
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q, sb: sqlbuilder.Postgres()}
}

// List devuelve las cajas que cumplen el filtro, ordenadas por serial.
func (r *InventarioRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Caja, error) {
	query, args, err := r.sb.ListCajas(f)
	if err != nil {
		return nil, fmt.Errorf("build list cajas: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cajas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Caja
	for rows.Next() {
		c, err := sqlbuilder.ScanCaja(rows)
		if err != nil {
			return nil, fmt.Errorf("scan caja: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetBySerial obtiene una caja por serial; (nil, nil) si no existe.
func (r *InventarioRepo) GetBySerial(ctx context.Context, serial string) (*entity.Caja, error) {
	query, args, err := r.sb.GetCaja(serial)
	if err != nil {
		return nil, fmt.Errorf("build get caja: %w", err)
	}
	c, err := sqlbuilder.ScanCaja(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caja by serial: %w", err)
	}
	return c, nil
}

// Create inserta la caja y asigna su ID. ErrDuplicate si el serial ya existe.
func (r *InventarioRepo) Create(ctx context.Context, c *entity.Caja) error {
	query, args, err := r.sb.InsertCaja(c)
	if err != nil {
		return fmt.Errorf("build insert caja: %w", err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert caja: %w", err)
	}
	return nil
}

// Update sobrescribe la caja con ese serial. ErrNotFound si no afecta filas.
func (r *InventarioRepo) Update(ctx context.Context, c *entity.Caja) error {
	query, args, err := r.sb.UpdateCaja(c)
	if err != nil {
		return fmt.Errorf("build update caja: %w", err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update caja: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la caja. ErrNotFound si no afecta filas.
func (r *InventarioRepo) Delete(ctx context.Context, serial string) error {
	query, args, err := r.sb.DeleteCaja(serial)
	if err != nil {
		return fmt.Errorf("build delete caja: %w", err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete caja: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByEstatus conteo por estatus.
func (r *InventarioRepo) CountByEstatus(ctx context.Context) ([]repository.GroupCount, error) {
	return r.countBy(ctx, "estatus")
}

// CountByProyecto conteo por proyecto.
func (r *InventarioRepo) CountByProyecto(ctx context.Context) ([]repository.GroupCount, error) {
	return r.countBy(ctx, "proyecto")
}

func (r *InventarioRepo) countBy(ctx context.Context, column string) ([]repository.GroupCount, error) {
	query, args, err := r.sb.CountCajasBy(column)
	if err != nil {
		return nil, fmt.Errorf("build count by %s: %w", column, err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	defer rows.Close()

	var out []repository.GroupCount
	for rows.Next() {
		g, err := sqlbuilder.ScanGroupCount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Totals cantidad de cajas y suma de contratos.
func (r *InventarioRepo) Totals(ctx context.Context) (repository.Totals, error) {
	var t repository.Totals
	query, args, err := r.sb.TotalsCajas()
	if err != nil {
		return t, fmt.Errorf("build totals: %w", err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Cajas, &t.TotalDelContrato); err != nil {
		return t, fmt.Errorf("totals: %w", err)
	}
	return t, nil
}
