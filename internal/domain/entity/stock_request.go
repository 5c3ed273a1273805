package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes posibles de una solicitud de stock.
const (
	// OriginStandalone indica una solicitud creada directamente por un usuario.
	OriginStandalone = "standalone"
	// OriginOrder indica una solicitud que pertenece a una orden agrupadora.
	OriginOrder = "order"
)

// NamePlaceholder es el nombre provisional de una solicitud aún no confirmada.
// Se sustituye por un folio de secuencia al confirmar.
const NamePlaceholder = "/"

// StockRequest representa una petición interna de producto: qué producto,
// cuánto, y hacia qué ubicación debe moverse. Los campos derivados
// (QuantityCanonical, ApplicableRouteIDs) los mantiene el motor, no el usuario.
type StockRequest struct {
	ID        string
	Name      string
	CompanyID string

	WarehouseID string
	LocationID  string
	RouteID     string

	ProductID string
	UoMID     string

	// QuantityRequested está expresada en la unidad de medida elegida.
	QuantityRequested decimal.Decimal
	// QuantityCanonical es la cantidad convertida a la unidad base del producto.
	QuantityCanonical decimal.Decimal

	// ApplicableRouteIDs es el conjunto de rutas válidas para la combinación
	// producto/ubicación actual, ordenado por identificador.
	ApplicableRouteIDs []string

	ProcurementGroupID string

	// Origin distingue solicitudes directas de las derivadas de una orden.
	Origin  string
	OrderID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOrderDerived indica si la solicitud proviene de una orden agrupadora.
func (r *StockRequest) IsOrderDerived() bool {
	return r.Origin == OriginOrder && r.OrderID != ""
}

// HasRoute indica si el usuario fijó una ruta preferida.
func (r *StockRequest) HasRoute() bool {
	return r.RouteID != ""
}
