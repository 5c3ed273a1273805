package entity

import "time"

// Warehouse representa una bodega: unidad organizativa que posee ubicaciones
// y define la ubicación de stock por defecto para las solicitudes.
type Warehouse struct {
	ID                     string
	CompanyID              string
	Code                   string // código corto único por empresa (ej. "WH1")
	Name                   string
	DefaultStockLocationID string // ubicación de stock principal (lot stock)
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
