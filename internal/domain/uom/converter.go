// Package uom implementa la conversión entre unidades de medida de una misma
// categoría (servicio de dominio puro, sin puertos).
package uom

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
)

// Convert convierte qty desde la unidad from hacia la unidad to.
// CantidadDestino = qty * from.Factor / to.Factor, redondeada alejándose de
// cero a la precisión de la unidad destino (nunca se redondea por debajo de
// lo solicitado).
// Solo es válida entre unidades de la misma categoría.
func Convert(qty decimal.Decimal, from, to *entity.UnitOfMeasure) (decimal.Decimal, error) {
	if from == nil || to == nil {
		return decimal.Zero, fmt.Errorf("%w: unidad de medida nula", domain.ErrInvalidInput)
	}
	if from.CategoryID != to.CategoryID {
		return decimal.Zero, fmt.Errorf("%w: %q no es convertible a %q",
			domain.ErrUomCategoryMismatch, from.Name, to.Name)
	}
	if from.Factor.LessThanOrEqual(decimal.Zero) || to.Factor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: factor de conversión no positivo", domain.ErrInvalidInput)
	}
	if from.ID == to.ID {
		return qty.RoundUp(to.Precision), nil
	}
	return qty.Mul(from.Factor).Div(to.Factor).RoundUp(to.Precision), nil
}
