package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryStore)(nil)

// CategoryStore implementación en memoria del puerto CategoryRepository.
type CategoryStore struct {
	mu         sync.RWMutex
	categories map[string]entity.ProductCategory
}

// NewCategoryStore construye el almacén de categorías de producto.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{categories: make(map[string]entity.ProductCategory)}
}

// Create guarda una copia de la categoría.
func (s *CategoryStore) Create(category *entity.ProductCategory) error {
	if category == nil || category.ID == "" {
		return fmt.Errorf("%w: categoría sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.ID] = *category
	return nil
}

// GetByID devuelve la categoría o nil si no existe.
func (s *CategoryStore) GetByID(id string) (*entity.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	out := category
	return &out, nil
}
