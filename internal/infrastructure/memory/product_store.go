package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore implementación en memoria del puerto ProductRepository.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

// NewProductStore construye el almacén de productos.
func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]entity.Product)}
}

// Create guarda una copia del producto.
func (s *ProductStore) Create(product *entity.Product) error {
	if product == nil || product.ID == "" {
		return fmt.Errorf("%w: producto sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (s *ProductStore) GetByID(id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	out := product
	return &out, nil
}
