// Package memory contiene las implementaciones en memoria de los puertos de
// persistencia. Son la referencia que usan los tests y las aplicaciones que
// embeben el motor sin un almacén propio; cada lectura devuelve una copia,
// como haría el escaneo de una fila.
package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyStore)(nil)

// CompanyStore implementación en memoria del puerto CompanyRepository.
type CompanyStore struct {
	mu        sync.RWMutex
	companies map[string]entity.Company
}

// NewCompanyStore construye el almacén de empresas.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{companies: make(map[string]entity.Company)}
}

// Create guarda una copia de la empresa.
func (s *CompanyStore) Create(company *entity.Company) error {
	if company == nil || company.ID == "" {
		return fmt.Errorf("%w: empresa sin identificador", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[company.ID] = *company
	return nil
}

// GetByID devuelve la empresa o nil si no existe.
func (s *CompanyStore) GetByID(id string) (*entity.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	company, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	out := company
	return &out, nil
}
