package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UoMCategory agrupa unidades de medida interconvertibles (peso, volumen,
// unidades...). La conversión solo es válida dentro de una misma categoría.
type UoMCategory struct {
	ID   string
	Name string
}

// UnitOfMeasure representa una unidad de medida.
// Factor expresa cuántas unidades de referencia de la categoría equivalen a
// 1 de esta unidad (docena=12, unidad=1, gramo=0.001 con kg de referencia).
// Precision son los decimales usados al redondear cantidades en esta unidad.
type UnitOfMeasure struct {
	ID         string
	CategoryID string
	Name       string
	Factor     decimal.Decimal
	Precision  int32
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
