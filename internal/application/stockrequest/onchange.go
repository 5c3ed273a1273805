package stockrequest

import (
	"fmt"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
)

// Campos observados por el reactor de consistencia.
const (
	FieldCompany   = "company"
	FieldWarehouse = "warehouse"
	FieldLocation  = "location"
	FieldProduct   = "product"
	FieldQuantity  = "quantity"
)

// ApplyChange ejecuta la reacción consultiva del campo cambiado y después
// recalcula los campos derivados. Muta la copia en sesión del llamador; nada
// se persiste ni se valida aquí: las restricciones corren al confirmar.
func (uc *StockRequestUseCase) ApplyChange(req *entity.StockRequest, field string) error {
	if req == nil {
		return fmt.Errorf("%w: solicitud nula", domain.ErrInvalidInput)
	}

	var err error
	switch field {
	case FieldWarehouse:
		err = uc.onWarehouseChange(req, false)
	case FieldLocation:
		err = uc.onLocationChange(req)
	case FieldCompany:
		err = uc.onCompanyChange(req)
	case FieldProduct:
		err = uc.onProductChange(req)
	case FieldQuantity:
		// Sin reacción propia; solo recálculo de derivados.
	default:
		return fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, field)
	}
	if err != nil {
		return err
	}

	uc.log.Debug().
		Str("request_id", req.ID).
		Str("campo", field).
		Msg("reacción de consistencia aplicada")
	return uc.RecomputeDerived(req)
}

// onWarehouseChange realinea ubicación y empresa con la bodega elegida.
// suppressChildReset evita la recursión mutua ubicación→bodega→ubicación
// cuando la invoca onLocationChange; la adopción de empresa corre igual.
func (uc *StockRequestUseCase) onWarehouseChange(req *entity.StockRequest, suppressChildReset bool) error {
	// Las solicitudes derivadas de una orden heredan bodega y ubicación de la
	// orden; reaccionar aquí las desalinearía de sus hermanas.
	if req.IsOrderDerived() {
		return nil
	}
	if req.WarehouseID == "" {
		return nil
	}

	warehouse, err := uc.warehouseRepo.GetByID(req.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, req.WarehouseID)
	}

	if !suppressChildReset {
		locationWarehouseID := ""
		if req.LocationID != "" {
			location, err := uc.locationRepo.GetByID(req.LocationID)
			if err != nil {
				return err
			}
			if location != nil {
				locationWarehouseID = location.WarehouseID
			}
		}
		if locationWarehouseID != req.WarehouseID {
			req.LocationID = warehouse.DefaultStockLocationID
		}
	}
	if warehouse.CompanyID != req.CompanyID {
		req.CompanyID = warehouse.CompanyID
	}
	return nil
}

// onLocationChange adopta la bodega dueña de la nueva ubicación y re-ejecuta
// la reacción de bodega con el reinicio de ubicación suprimido.
func (uc *StockRequestUseCase) onLocationChange(req *entity.StockRequest) error {
	if req.LocationID == "" {
		return nil
	}

	location, err := uc.locationRepo.GetByID(req.LocationID)
	if err != nil {
		return err
	}
	if location == nil {
		return fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, req.LocationID)
	}

	if location.WarehouseID != "" && location.WarehouseID != req.WarehouseID {
		req.WarehouseID = location.WarehouseID
		return uc.onWarehouseChange(req, true)
	}
	return nil
}

// onCompanyChange busca una bodega por defecto para la nueva empresa cuando la
// actual no sirve. Sin candidata, la solicitud queda sin bodega.
func (uc *StockRequestUseCase) onCompanyChange(req *entity.StockRequest) error {
	if req.CompanyID == "" {
		return nil
	}

	needsWarehouse := req.WarehouseID == ""
	if !needsWarehouse {
		warehouse, err := uc.warehouseRepo.GetByID(req.WarehouseID)
		if err != nil {
			return err
		}
		needsWarehouse = warehouse == nil || warehouse.CompanyID != req.CompanyID
	}
	if !needsWarehouse {
		return nil
	}

	candidate, err := uc.warehouseRepo.FindFirstForCompany(req.CompanyID)
	if err != nil {
		return err
	}
	if candidate == nil {
		req.WarehouseID = ""
		return nil
	}
	req.WarehouseID = candidate.ID
	return uc.onWarehouseChange(req, false)
}

// onProductChange adopta la unidad de medida por defecto del nuevo producto.
func (uc *StockRequestUseCase) onProductChange(req *entity.StockRequest) error {
	if req.ProductID == "" {
		return nil
	}

	product, err := uc.productRepo.GetByID(req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}
	req.UoMID = product.UoMID
	return nil
}
