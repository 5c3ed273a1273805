package stockrequest

import (
	"fmt"
	"sort"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
)

// ComputeApplicableRoutes recalcula ApplicableRouteIDs para todo el lote.
// Determinista e idempotente: el resultado queda ordenado por identificador y
// el mapa de rutas por bodega se construye por invocación, nunca se comparte.
func (uc *StockRequestUseCase) ComputeApplicableRoutes(batch []*entity.StockRequest) error {
	if len(batch) == 0 {
		return nil
	}

	// 1. Rutas por bodega: una sola consulta para todas las bodegas del lote.
	routesByWarehouse := make(map[string][]*entity.Route)
	if warehouseIDs := distinctWarehouseIDs(batch); len(warehouseIDs) > 0 {
		routes, err := uc.routeRepo.FindByWarehouses(warehouseIDs)
		if err != nil {
			return err
		}
		for _, route := range routes {
			for _, warehouseID := range route.WarehouseIDs {
				routesByWarehouse[warehouseID] = append(routesByWarehouse[warehouseID], route)
			}
		}
	}

	// 2. Por solicitud: candidatas = rutas del producto ∪ rutas totales de su
	//    categoría ∪ rutas de la bodega. Aplicables = candidatas con alguna
	//    regla que entrega dentro de los ancestros de la ubicación.
	for _, req := range batch {
		candidates := make(map[string]*entity.Route)

		if req.ProductID != "" {
			product, err := uc.productRepo.GetByID(req.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
			}
			ids := append([]string(nil), product.RouteIDs...)
			categoryIDs, err := uc.categoryTotalRouteIDs(product.CategoryID)
			if err != nil {
				return err
			}
			ids = append(ids, categoryIDs...)

			productRoutes, err := uc.routeRepo.GetByIDs(ids)
			if err != nil {
				return err
			}
			for _, route := range productRoutes {
				candidates[route.ID] = route
			}
		}
		for _, route := range routesByWarehouse[req.WarehouseID] {
			candidates[route.ID] = route
		}

		applicable, err := uc.filterByDestination(req.LocationID, candidates)
		if err != nil {
			return err
		}
		req.ApplicableRouteIDs = applicable

		uc.log.Debug().
			Str("request_id", req.ID).
			Int("candidatas", len(candidates)).
			Int("aplicables", len(applicable)).
			Msg("rutas aplicables recalculadas")
	}
	return nil
}

// filterByDestination conserva las rutas candidatas con al menos una regla
// cuyo destino cae dentro de la cadena de ancestros de la ubicación (incluida
// ella misma). Sin ubicación no hay rutas aplicables.
func (uc *StockRequestUseCase) filterByDestination(locationID string, candidates map[string]*entity.Route) ([]string, error) {
	ids := make([]string, 0, len(candidates))
	if locationID == "" || len(candidates) == 0 {
		return ids, nil
	}

	chain, err := uc.Ancestors(locationID)
	if err != nil {
		return nil, err
	}
	ancestorIDs := make(map[string]bool, len(chain))
	for _, location := range chain {
		ancestorIDs[location.ID] = true
	}

	for id, route := range candidates {
		for _, rule := range route.Rules {
			if ancestorIDs[rule.DestinationLocationID] {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func distinctWarehouseIDs(batch []*entity.StockRequest) []string {
	seen := make(map[string]bool, len(batch))
	ids := make([]string, 0, len(batch))
	for _, req := range batch {
		if req.WarehouseID == "" || seen[req.WarehouseID] {
			continue
		}
		seen[req.WarehouseID] = true
		ids = append(ids, req.WarehouseID)
	}
	return ids
}
