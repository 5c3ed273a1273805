package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteStore)(nil)

// RouteStore implementación en memoria del puerto RouteRepository. Conserva
// el orden de alta para que las consultas por lote sean deterministas.
type RouteStore struct {
	mu     sync.RWMutex
	routes map[string]entity.Route
	order  []string
}

// NewRouteStore construye el almacén de rutas.
func NewRouteStore() *RouteStore {
	return &RouteStore{routes: make(map[string]entity.Route)}
}

// Create guarda una copia de la ruta al final del orden de alta.
func (s *RouteStore) Create(route *entity.Route) error {
	if route == nil || route.ID == "" {
		return fmt.Errorf("%w: ruta sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[route.ID]; !ok {
		s.order = append(s.order, route.ID)
	}
	s.routes[route.ID] = *route
	return nil
}

// GetByID devuelve la ruta o nil si no existe.
func (s *RouteStore) GetByID(id string) (*entity.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	route, ok := s.routes[id]
	if !ok {
		return nil, nil
	}
	out := route
	return &out, nil
}

// GetByIDs resuelve las rutas pedidas en orden de alta; los identificadores
// desconocidos o repetidos se omiten.
func (s *RouteStore) GetByIDs(ids []string) ([]*entity.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	list := make([]*entity.Route, 0, len(wanted))
	for _, id := range s.order {
		if !wanted[id] {
			continue
		}
		route := s.routes[id]
		out := route
		list = append(list, &out)
	}
	return list, nil
}

// FindByWarehouses devuelve, en orden de alta, las rutas asociadas a alguna
// de las bodegas indicadas. Cada ruta aparece una sola vez.
func (s *RouteStore) FindByWarehouses(warehouseIDs []string) ([]*entity.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]bool, len(warehouseIDs))
	for _, id := range warehouseIDs {
		wanted[id] = true
	}
	list := make([]*entity.Route, 0)
	for _, id := range s.order {
		route := s.routes[id]
		for _, warehouseID := range route.WarehouseIDs {
			if wanted[warehouseID] {
				out := route
				list = append(list, &out)
				break
			}
		}
	}
	return list, nil
}
