package repository

import "github.com/ursais/stock-logistics-request/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	// FindFirstForCompany devuelve la primera bodega de la empresa según el
	// orden de alta, o nil si no hay ninguna. Es la bodega por defecto.
	FindFirstForCompany(companyID string) (*entity.Warehouse, error)
	ListByCompany(companyID string) ([]*entity.Warehouse, error)
}
