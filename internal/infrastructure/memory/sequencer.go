package memory

import (
	"fmt"
	"sync"

	"github.com/ursais/stock-logistics-request/internal/application/stockrequest"
)

var _ stockrequest.NameSequencer = (*Sequencer)(nil)

// DefaultSequencePrefix es el prefijo de folio de fábrica.
const DefaultSequencePrefix = "SR/"

// Sequencer asigna folios consecutivos por empresa, estilo "SR/00001".
// Cada empresa lleva su propio contador.
type Sequencer struct {
	mu       sync.Mutex
	prefix   string
	counters map[string]int
}

// NewSequencer construye el secuenciador. Con prefix vacío usa el de fábrica.
func NewSequencer(prefix string) *Sequencer {
	if prefix == "" {
		prefix = DefaultSequencePrefix
	}
	return &Sequencer{prefix: prefix, counters: make(map[string]int)}
}

// Next devuelve el siguiente folio de la empresa.
func (s *Sequencer) Next(companyID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[companyID]++
	return fmt.Sprintf("%s%05d", s.prefix, s.counters[companyID]), nil
}
