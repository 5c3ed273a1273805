package dto

import "github.com/shopspring/decimal"

// CreateStockRequestInput entrada para construir un borrador de solicitud.
// Los campos opcionales vacíos se completan con los valores por defecto de la
// empresa: primera bodega, su ubicación de existencias y la unidad base del
// producto.
type CreateStockRequestInput struct {
	CompanyID          string          `json:"company_id" validate:"required"`
	ProductID          string          `json:"product_id" validate:"required"`
	Quantity           decimal.Decimal `json:"quantity"`
	UoMID              string          `json:"uom_id"`
	WarehouseID        string          `json:"warehouse_id"`
	LocationID         string          `json:"location_id"`
	RouteID            string          `json:"route_id"`
	ProcurementGroupID string          `json:"procurement_group_id"`
	OrderID            string          `json:"order_id"`
}
