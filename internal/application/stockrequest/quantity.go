package stockrequest

import (
	"fmt"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/uom"
)

// NormalizeQuantity convierte la cantidad solicitada a la unidad base del
// producto y la almacena en QuantityCanonical. Se recalcula tras cada
// mutación; leerla nunca dispara cómputo.
func (uc *StockRequestUseCase) NormalizeQuantity(req *entity.StockRequest) error {
	if req.ProductID == "" || req.UoMID == "" {
		return fmt.Errorf("%w: la normalización requiere producto y unidad de medida", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}

	productUoM, err := uc.uomRepo.GetByID(product.UoMID)
	if err != nil {
		return err
	}
	if productUoM == nil {
		return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, product.UoMID)
	}
	requestUoM, err := uc.uomRepo.GetByID(req.UoMID)
	if err != nil {
		return err
	}
	if requestUoM == nil {
		return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, req.UoMID)
	}

	canonical, err := uom.Convert(req.QuantityRequested, requestUoM, productUoM)
	if err != nil {
		return err
	}
	req.QuantityCanonical = canonical
	return nil
}
