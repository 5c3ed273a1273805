package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationStore)(nil)

// LocationStore implementación en memoria del puerto LocationRepository.
type LocationStore struct {
	mu        sync.RWMutex
	locations map[string]entity.Location
}

// NewLocationStore construye el almacén de ubicaciones.
func NewLocationStore() *LocationStore {
	return &LocationStore{locations: make(map[string]entity.Location)}
}

// Create guarda una copia de la ubicación.
func (s *LocationStore) Create(location *entity.Location) error {
	if location == nil || location.ID == "" {
		return fmt.Errorf("%w: ubicación sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[location.ID] = *location
	return nil
}

// GetByID devuelve la ubicación o nil si no existe.
func (s *LocationStore) GetByID(id string) (*entity.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	location, ok := s.locations[id]
	if !ok {
		return nil, nil
	}
	out := location
	return &out, nil
}
