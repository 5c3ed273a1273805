package stockrequest

import (
	"fmt"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
)

// Ancestors devuelve la cadena de ancestros de la ubicación empezando por
// ella misma y subiendo por ParentID. Cada nodo aparece exactamente una vez;
// un padre repetido delata un ciclo en los datos maestros y corta el recorrido
// con ErrHierarchyCycle.
func (uc *StockRequestUseCase) Ancestors(locationID string) ([]*entity.Location, error) {
	visited := make(map[string]bool)
	chain := make([]*entity.Location, 0, 4)

	currentID := locationID
	for currentID != "" {
		if visited[currentID] {
			return nil, fmt.Errorf("%w: ubicación %s", domain.ErrHierarchyCycle, currentID)
		}
		visited[currentID] = true

		location, err := uc.locationRepo.GetByID(currentID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, currentID)
		}
		chain = append(chain, location)
		currentID = location.ParentID
	}
	return chain, nil
}

// categoryTotalRouteIDs junta las rutas de la categoría del producto y de
// todos sus padres (las rutas "totales" de la categoría). Mismo recorrido
// protegido que Ancestors.
func (uc *StockRequestUseCase) categoryTotalRouteIDs(categoryID string) ([]string, error) {
	var ids []string
	visited := make(map[string]bool)

	currentID := categoryID
	for currentID != "" {
		if visited[currentID] {
			return nil, fmt.Errorf("%w: categoría %s", domain.ErrHierarchyCycle, currentID)
		}
		visited[currentID] = true

		category, err := uc.categoryRepo.GetByID(currentID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, currentID)
		}
		ids = append(ids, category.RouteIDs...)
		currentID = category.ParentID
	}
	return ids, nil
}
