package repository

import "github.com/ursais/stock-logistics-request/internal/domain/entity"

// RouteRepository define el puerto de persistencia para Route (DIP).
type RouteRepository interface {
	Create(route *entity.Route) error
	GetByID(id string) (*entity.Route, error)
	// GetByIDs resuelve varias rutas en una sola llamada; los identificadores
	// desconocidos se omiten del resultado.
	GetByIDs(ids []string) ([]*entity.Route, error)
	// FindByWarehouses devuelve las rutas asociadas a cualquiera de las
	// bodegas indicadas. Una ruta asociada a varias bodegas aparece una vez.
	FindByWarehouses(warehouseIDs []string) ([]*entity.Route, error)
}
