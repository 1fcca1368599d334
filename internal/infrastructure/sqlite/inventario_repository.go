package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/sqlbuilder"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo InventarioRepository sobre SQLite (con *sql.DB o *sql.Tx).
type InventarioRepo struct {
	q  querier
	sb sqlbuilder.Builder
}

// NewInventarioRepository construye el repositorio sobre la conexión principal.
func NewInventarioRepository(s *Storage) *InventarioRepo {
	return newInventarioRepo(s.db)
}

func newInventarioRepo(q querier) *InventarioRepo {
	return &InventarioRepo{q: q, sb: sqlbuilder.SQLite()}
}

func (r *InventarioRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Caja, error) {
	query, args, err := r.sb.ListCajas(f)
	if err != nil {
		return nil, fmt.Errorf("build list cajas: %w", err)
	}
	rows, err := r.q.QueryContext(ctx, query, args...)
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

func (r *InventarioRepo) GetBySerial(ctx context.Context, serial string) (*entity.Caja, error) {
	query, args, err := r.sb.GetCaja(serial)
	if err != nil {
		return nil, fmt.Errorf("build get caja: %w", err)
	}
	c, err := sqlbuilder.ScanCaja(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caja by serial: %w", err)
	}
	return c, nil
}

func (r *InventarioRepo) Create(ctx context.Context, c *entity.Caja) error {
	query, args, err := r.sb.InsertCaja(c)
	if err != nil {
		return fmt.Errorf("build insert caja: %w", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert caja: %w", err)
	}
	return nil
}

func (r *InventarioRepo) Update(ctx context.Context, c *entity.Caja) error {
	query, args, err := r.sb.UpdateCaja(c)
	if err != nil {
		return fmt.Errorf("build update caja: %w", err)
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update caja: %w", err)
	}
	return requireAffected(res.RowsAffected())
}

func (r *InventarioRepo) Delete(ctx context.Context, serial string) error {
	query, args, err := r.sb.DeleteCaja(serial)
	if err != nil {
		return fmt.Errorf("build delete caja: %w", err)
	}
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete caja: %w", err)
	}
	return requireAffected(res.RowsAffected())
}

func (r *InventarioRepo) CountByEstatus(ctx context.Context) ([]repository.GroupCount, error) {
	return r.countBy(ctx, "estatus")
}

func (r *InventarioRepo) CountByProyecto(ctx context.Context) ([]repository.GroupCount, error) {
	return r.countBy(ctx, "proyecto")
}

func (r *InventarioRepo) countBy(ctx context.Context, column string) ([]repository.GroupCount, error) {
	query, args, err := r.sb.CountCajasBy(column)
	if err != nil {
		return nil, fmt.Errorf("build count by %s: %w", column, err)
	}
	rows, err := r.q.QueryContext(ctx, query, args...)
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

func (r *InventarioRepo) Totals(ctx context.Context) (repository.Totals, error) {
	var t repository.Totals
	query, args, err := r.sb.TotalsCajas()
	if err != nil {
		return t, fmt.Errorf("build totals: %w", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&t.Cajas, &t.TotalDelContrato); err != nil {
		return t, fmt.Errorf("totals: %w", err)
	}
	return t, nil
}

func requireAffected(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
