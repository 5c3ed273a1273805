package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseStore)(nil)

// WarehouseStore implementación en memoria del puerto WarehouseRepository.
// Conserva el orden de alta: FindFirstForCompany depende de él.
type WarehouseStore struct {
	mu         sync.RWMutex
	warehouses map[string]entity.Warehouse
	order      []string
}

// NewWarehouseStore construye el almacén de bodegas.
func NewWarehouseStore() *WarehouseStore {
	return &WarehouseStore{warehouses: make(map[string]entity.Warehouse)}
}

// Create guarda una copia de la bodega al final del orden de alta.
func (s *WarehouseStore) Create(warehouse *entity.Warehouse) error {
	if warehouse == nil || warehouse.ID == "" {
		return fmt.Errorf("%w: bodega sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.warehouses[warehouse.ID]; !ok {
		s.order = append(s.order, warehouse.ID)
	}
	s.warehouses[warehouse.ID] = *warehouse
	return nil
}

// GetByID devuelve la bodega o nil si no existe.
func (s *WarehouseStore) GetByID(id string) (*entity.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	warehouse, ok := s.warehouses[id]
	if !ok {
		return nil, nil
	}
	out := warehouse
	return &out, nil
}

// FindFirstForCompany devuelve la primera bodega compartida o de la empresa
// según el orden de alta, o nil si no hay candidata.
func (s *WarehouseStore) FindFirstForCompany(companyID string) (*entity.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		warehouse := s.warehouses[id]
		if warehouse.CompanyID == "" || warehouse.CompanyID == companyID {
			out := warehouse
			return &out, nil
		}
	}
	return nil, nil
}

// ListByCompany lista las bodegas de la empresa en orden de alta.
func (s *WarehouseStore) ListByCompany(companyID string) ([]*entity.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Warehouse, 0)
	for _, id := range s.order {
		warehouse := s.warehouses[id]
		if warehouse.CompanyID == companyID {
			out := warehouse
			list = append(list, &out)
		}
	}
	return list, nil
}
