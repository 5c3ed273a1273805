package entity

import "time"

// Clases de producto. Solo los almacenables y consumibles admiten
// solicitudes de stock; los servicios quedan excluidos.
const (
	ProductKindStorable   = "storable"
	ProductKindConsumable = "consumable"
	ProductKindService    = "service"
)

// Product representa un producto o SKU solicitable.
// CompanyID vacío significa producto compartido entre empresas.
// UoMID es la unidad de medida por defecto; RouteIDs son las rutas
// asociadas directamente al producto (además de las de su categoría).
type Product struct {
	ID         string
	CompanyID  string
	SKU        string // código único por empresa
	Name       string
	Kind       string // ver constantes ProductKind*
	CategoryID string
	UoMID      string
	RouteIDs   []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsRequestable indica si la clase del producto admite solicitudes de stock.
func (p *Product) IsRequestable() bool {
	return p.Kind == ProductKindStorable || p.Kind == ProductKindConsumable
}
