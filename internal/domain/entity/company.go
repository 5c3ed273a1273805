package entity

import "time"

// Company representa una organización/tenant propietaria de solicitudes de stock.
// AllowVirtualLocations habilita solicitar sobre ubicaciones virtuales (vistas,
// proveedor, cliente) además de las internas y de tránsito.
type Company struct {
	ID                    string
	Name                  string
	AllowVirtualLocations bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
