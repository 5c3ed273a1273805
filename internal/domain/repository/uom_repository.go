package repository

import "github.com/ursais/stock-logistics-request/internal/domain/entity"

// UoMRepository define el puerto de persistencia para unidades de medida
// y sus categorías (DIP).
type UoMRepository interface {
	CreateCategory(category *entity.UoMCategory) error
	Create(uom *entity.UnitOfMeasure) error
	GetByID(id string) (*entity.UnitOfMeasure, error)
	GetCategoryByID(id string) (*entity.UoMCategory, error)
}
