package repository

import "github.com/ursais/stock-logistics-request/internal/domain/entity"

// StockRequestRepository define el puerto de persistencia para StockRequest (DIP).
// Usado dentro de confirmaciones por lote para garantizar consistencia.
type StockRequestRepository interface {
	Create(request *entity.StockRequest) error
	// CreateBatch persiste el lote completo o nada: si alguna solicitud viola
	// la unicidad de nombre por empresa, ninguna queda guardada.
	CreateBatch(requests []*entity.StockRequest) error
	GetByID(id string) (*entity.StockRequest, error)
	Update(request *entity.StockRequest) error
	ListByCompany(companyID string) ([]*entity.StockRequest, error)
	// Bajas en cascada: al eliminar un registro maestro caen sus solicitudes.
	DeleteByWarehouse(warehouseID string) (int, error)
	DeleteByLocation(locationID string) (int, error)
	DeleteByProduct(productID string) (int, error)
}
