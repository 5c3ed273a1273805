package entity

import "time"

// RouteRule es una regla de abastecimiento dentro de una ruta; lo único que
// el motor de solicitudes necesita de ella es su ubicación destino.
type RouteRule struct {
	ID                    string
	Name                  string
	DestinationLocationID string
}

// Route representa una política de enrutamiento logístico: un conjunto de
// reglas seleccionable para las bodegas listadas en WarehouseIDs.
// CompanyID vacío significa ruta compartida entre empresas.
// Una ruta es aplicable a una solicitud solo si alguna de sus reglas entrega
// dentro de la cadena de ancestros de la ubicación solicitada.
type Route struct {
	ID           string
	CompanyID    string
	Name         string
	WarehouseIDs []string
	Rules        []RouteRule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
