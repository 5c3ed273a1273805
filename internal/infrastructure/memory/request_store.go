package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.StockRequestRepository = (*RequestStore)(nil)

// nameKey identifica la restricción unique(name, company).
type nameKey struct {
	companyID string
	name      string
}

// RequestStore implementación en memoria del puerto StockRequestRepository.
// Hace cumplir la unicidad de nombre por empresa y las bajas en cascada al
// eliminar registros maestros.
type RequestStore struct {
	mu       sync.RWMutex
	requests map[string]entity.StockRequest
	order    []string
	names    map[nameKey]string // clave → id de la solicitud dueña
}

// NewRequestStore construye el almacén de solicitudes.
func NewRequestStore() *RequestStore {
	return &RequestStore{
		requests: make(map[string]entity.StockRequest),
		names:    make(map[nameKey]string),
	}
}

// Create guarda una copia de la solicitud respetando la unicidad de nombre.
func (s *RequestStore) Create(request *entity.StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkInsertable(request, nil); err != nil {
		return err
	}
	s.insert(request)
	return nil
}

// CreateBatch persiste el lote completo o nada: primero comprueba todas las
// solicitudes, incluida la unicidad de nombre dentro del propio lote, y solo
// después inserta.
func (s *RequestStore) CreateBatch(requests []*entity.StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[nameKey]bool, len(requests))
	for _, request := range requests {
		if err := s.checkInsertable(request, staged); err != nil {
			return err
		}
		staged[nameKey{request.CompanyID, request.Name}] = true
	}
	for _, request := range requests {
		s.insert(request)
	}
	return nil
}

// GetByID devuelve la solicitud o nil si no existe.
func (s *RequestStore) GetByID(id string) (*entity.StockRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	out := request
	return &out, nil
}

// Update reemplaza la solicitud y reindexa su nombre si cambió.
func (s *RequestStore) Update(request *entity.StockRequest) error {
	if request == nil || request.ID == "" {
		return fmt.Errorf("%w: solicitud sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[request.ID]
	if !ok {
		return fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, request.ID)
	}
	oldKey := nameKey{current.CompanyID, current.Name}
	newKey := nameKey{request.CompanyID, request.Name}
	if newKey != oldKey {
		if owner, taken := s.names[newKey]; taken && owner != request.ID {
			return fmt.Errorf("%w: %q en la empresa %s",
				domain.ErrDuplicateName, request.Name, request.CompanyID)
		}
		delete(s.names, oldKey)
		s.names[newKey] = request.ID
	}
	s.requests[request.ID] = *request
	return nil
}

// ListByCompany lista las solicitudes de la empresa en orden de alta.
func (s *RequestStore) ListByCompany(companyID string) ([]*entity.StockRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.StockRequest, 0)
	for _, id := range s.order {
		request := s.requests[id]
		if request.CompanyID == companyID {
			out := request
			list = append(list, &out)
		}
	}
	return list, nil
}

// DeleteByWarehouse elimina en cascada las solicitudes de la bodega y
// devuelve cuántas cayeron.
func (s *RequestStore) DeleteByWarehouse(warehouseID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWhere(func(r *entity.StockRequest) bool {
		return r.WarehouseID == warehouseID
	}), nil
}

// DeleteByLocation elimina en cascada las solicitudes de la ubicación.
func (s *RequestStore) DeleteByLocation(locationID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWhere(func(r *entity.StockRequest) bool {
		return r.LocationID == locationID
	}), nil
}

// DeleteByProduct elimina en cascada las solicitudes del producto.
func (s *RequestStore) DeleteByProduct(productID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteWhere(func(r *entity.StockRequest) bool {
		return r.ProductID == productID
	}), nil
}

// checkInsertable valida identificador y nombre antes de insertar. staged
// lleva los nombres ya aceptados del lote en curso. Llamar con el lock tomado.
func (s *RequestStore) checkInsertable(request *entity.StockRequest, staged map[nameKey]bool) error {
	if request == nil || request.ID == "" {
		return fmt.Errorf("%w: solicitud sin identificador", domain.ErrInvalidInput)
	}
	if _, ok := s.requests[request.ID]; ok {
		return fmt.Errorf("%w: solicitud %s ya existe", domain.ErrInvalidInput, request.ID)
	}
	key := nameKey{request.CompanyID, request.Name}
	if _, taken := s.names[key]; taken || staged[key] {
		return fmt.Errorf("%w: %q en la empresa %s",
			domain.ErrDuplicateName, request.Name, request.CompanyID)
	}
	return nil
}

// insert agrega la solicitud ya validada. Llamar con el lock tomado.
func (s *RequestStore) insert(request *entity.StockRequest) {
	s.requests[request.ID] = *request
	s.order = append(s.order, request.ID)
	s.names[nameKey{request.CompanyID, request.Name}] = request.ID
}

// deleteWhere elimina las solicitudes que cumplen el predicado, manteniendo
// el orden de alta de las restantes. Llamar con el lock tomado.
func (s *RequestStore) deleteWhere(match func(*entity.StockRequest) bool) int {
	deleted := 0
	order := make([]string, 0, len(s.order))
	for _, id := range s.order {
		request := s.requests[id]
		if match(&request) {
			delete(s.requests, id)
			delete(s.names, nameKey{request.CompanyID, request.Name})
			deleted++
			continue
		}
		order = append(order, id)
	}
	s.order = order
	return deleted
}
