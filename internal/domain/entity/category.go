package entity

import "time"

// ProductCategory representa una categoría de productos (jerárquica).
// RouteIDs son las rutas asociadas directamente a la categoría; las rutas
// "totales" de un producto incluyen además las de todas las categorías
// ancestras de la suya.
type ProductCategory struct {
	ID        string
	ParentID  string // vacío si es raíz
	Name      string
	RouteIDs  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
