package entity

import "time"

// Clases de ubicación. Las internas y de tránsito son físicas; el resto
// se consideran virtuales y solo admiten solicitudes si la empresa lo permite.
const (
	LocationKindInternal = "internal"
	LocationKindTransit  = "transit"
	LocationKindView     = "view"
	LocationKindSupplier = "supplier"
	LocationKindCustomer = "customer"
)

// Location representa un nodo del árbol de ubicaciones (las ubicaciones se
// anidan dentro de ubicaciones). WarehouseID es la bodega propietaria, si la
// hay; CompanyID vacío significa ubicación compartida.
type Location struct {
	ID          string
	CompanyID   string
	WarehouseID string
	ParentID    string // vacío si es raíz
	Name        string
	Kind        string // ver constantes LocationKind*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPhysical indica si la ubicación es interna o de tránsito.
func (l *Location) IsPhysical() bool {
	return l.Kind == LocationKindInternal || l.Kind == LocationKindTransit
}
