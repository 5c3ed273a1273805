package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.UoMRepository = (*UoMStore)(nil)

// UoMStore implementación en memoria del puerto UoMRepository. Guarda las
// unidades junto con sus categorías.
type UoMStore struct {
	mu         sync.RWMutex
	units      map[string]entity.UnitOfMeasure
	categories map[string]entity.UoMCategory
}

// NewUoMStore construye el almacén de unidades de medida.
func NewUoMStore() *UoMStore {
	return &UoMStore{
		units:      make(map[string]entity.UnitOfMeasure),
		categories: make(map[string]entity.UoMCategory),
	}
}

// CreateCategory guarda una copia de la categoría de unidades.
func (s *UoMStore) CreateCategory(category *entity.UoMCategory) error {
	if category == nil || category.ID == "" {
		return fmt.Errorf("%w: categoría de unidades sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.ID] = *category
	return nil
}

// Create guarda una copia de la unidad de medida.
func (s *UoMStore) Create(uom *entity.UnitOfMeasure) error {
	if uom == nil || uom.ID == "" {
		return fmt.Errorf("%w: unidad sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[uom.ID] = *uom
	return nil
}

// GetByID devuelve la unidad o nil si no existe.
func (s *UoMStore) GetByID(id string) (*entity.UnitOfMeasure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uom, ok := s.units[id]
	if !ok {
		return nil, nil
	}
	out := uom
	return &out, nil
}

// GetCategoryByID devuelve la categoría de unidades o nil si no existe.
func (s *UoMStore) GetCategoryByID(id string) (*entity.UoMCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	out := category
	return &out, nil
}
