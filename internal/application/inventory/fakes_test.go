package inventory_test

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// memRepo InventarioRepository en memoria indexado por serial.
type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	cajas   map[string]*entity.Caja
	failOn  string // serial que provoca un error genérico en Create
	creates int
}

func newMemRepo() *memRepo { return &memRepo{cajas: map[string]*entity.Caja{}} }

func (r *memRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.Caja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Caja
	for _, c := range r.cajas {
		if f.Serial != "" && !strings.Contains(strings.ToLower(c.Serial), strings.ToLower(f.Serial)) {
			continue
		}
		if f.Proyecto != "" && !strings.Contains(strings.ToLower(c.Proyecto), strings.ToLower(f.Proyecto)) {
			continue
		}
		if f.Estatus != "" && !strings.Contains(strings.ToLower(c.Estatus), strings.ToLower(f.Estatus)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out, nil
}

func (r *memRepo) GetBySerial(_ context.Context, serial string) (*entity.Caja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cajas[serial]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) Create(_ context.Context, c *entity.Caja) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Serial == r.failOn && r.failOn != "" {
		return errors.New("disco lleno")
	}
	if _, ok := r.cajas[c.Serial]; ok {
		return domain.ErrDuplicate
	}
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.cajas[c.Serial] = &cp
	r.creates++
	return nil
}

func (r *memRepo) Update(_ context.Context, c *entity.Caja) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.cajas[c.Serial]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *c
	cp.ID = old.ID
	cp.UsuarioCreacion = old.UsuarioCreacion
	cp.FechaCreacion = old.FechaCreacion
	r.cajas[c.Serial] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, serial string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cajas[serial]; !ok {
		return domain.ErrNotFound
	}
	delete(r.cajas, serial)
	return nil
}

func (r *memRepo) group(key func(*entity.Caja) string) []repository.GroupCount {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int{}
	for _, c := range r.cajas {
		counts[key(c)]++
	}
	out := make([]repository.GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, repository.GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (r *memRepo) CountByEstatus(context.Context) ([]repository.GroupCount, error) {
	return r.group(func(c *entity.Caja) string { return c.Estatus }), nil
}

func (r *memRepo) CountByProyecto(context.Context) ([]repository.GroupCount, error) {
	return r.group(func(c *entity.Caja) string { return c.Proyecto }), nil
}

func (r *memRepo) Totals(context.Context) (repository.Totals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := repository.Totals{TotalDelContrato: decimal.Zero}
	for _, c := range r.cajas {
		t.Cajas++
		t.TotalDelContrato = t.TotalDelContrato.Add(c.TotaldelContrato)
	}
	return t, nil
}

// memTxRunner copia el estado y lo restaura si fn falla (rollback).
type memTxRunner struct{ repo *memRepo }

func (tx memTxRunner) Run(ctx context.Context, fn func(repository.InventarioRepository) error) error {
	tx.repo.mu.Lock()
	snapshot := make(map[string]*entity.Caja, len(tx.repo.cajas))
	for k, v := range tx.repo.cajas {
		snapshot[k] = v
	}
	tx.repo.mu.Unlock()

	if err := fn(tx.repo); err != nil {
		tx.repo.mu.Lock()
		tx.repo.cajas = snapshot
		tx.repo.mu.Unlock()
		return err
	}
	return nil
}

// stubReader devuelve una hoja fija.
type stubReader struct {
	sheet *dto.SheetData
	err   error
}

func (s stubReader) Read(io.Reader, []string) (*dto.SheetData, error) { return s.sheet, s.err }

// captureWriter guarda lo que recibe.
type captureWriter struct {
	sheet   string
	columns []string
	rows    [][]any
}

func (w *captureWriter) Write(sheet string, columns []string, rows [][]any) ([]byte, error) {
	w.sheet, w.columns, w.rows = sheet, columns, rows
	return []byte("xlsx"), nil
}

type stubTicket struct{ serial string }

func (s *stubTicket) Generate(_ context.Context, c *entity.Caja) ([]byte, error) {
	s.serial = c.Serial
	return []byte("%PDF-"), nil
}
