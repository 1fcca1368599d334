package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// sinEspecificar clave para cajas con el campo vacío.
const sinEspecificar = "Sin especificar"

// Summary construye el resumen del inventario.
//
// Tres consultas en paralelo:
//  1. CountByEstatus  → PorEstatus
//  2. CountByProyecto → PorProyecto
//  3. Totals          → TotalCajas + TotalContratos
func (uc *InventarioUseCase) Summary(ctx context.Context) (*dto.ResumenInventarioDTO, error) {
	type groupResult struct {
		groups []repository.GroupCount
		err    error
	}
	type totalsResult struct {
		totals repository.Totals
		err    error
	}

	estatusCh := make(chan groupResult, 1)
	proyectoCh := make(chan groupResult, 1)
	totalsCh := make(chan totalsResult, 1)

	go func() {
		g, err := uc.repo.CountByEstatus(ctx)
		estatusCh <- groupResult{g, err}
	}()
	go func() {
		g, err := uc.repo.CountByProyecto(ctx)
		proyectoCh <- groupResult{g, err}
	}()
	go func() {
		t, err := uc.repo.Totals(ctx)
		totalsCh <- totalsResult{t, err}
	}()

	estatus := <-estatusCh
	proyecto := <-proyectoCh
	totals := <-totalsCh

	if estatus.err != nil {
		return nil, fmt.Errorf("resumen: por estatus: %w", estatus.err)
	}
	if proyecto.err != nil {
		return nil, fmt.Errorf("resumen: por proyecto: %w", proyecto.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("resumen: totales: %w", totals.err)
	}

	return &dto.ResumenInventarioDTO{
		TotalCajas:     totals.totals.Cajas,
		TotalContratos: totals.totals.TotalDelContrato.Round(2),
		PorEstatus:     toConteos(estatus.groups),
		PorProyecto:    toConteos(proyecto.groups),
	}, nil
}

func toConteos(groups []repository.GroupCount) []dto.ConteoDTO {
	out := make([]dto.ConteoDTO, 0, len(groups))
	for _, g := range groups {
		key := g.Key
		if key == "" {
			key = sinEspecificar
		}
		out = append(out, dto.ConteoDTO{Clave: key, Cantidad: g.Count})
	}
	return out
}
