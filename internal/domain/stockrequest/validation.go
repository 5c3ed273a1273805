// Package stockrequest contiene las validaciones de registro para solicitudes
// de stock. Son funciones puras sobre la solicitud y sus registros relacionados
// ya resueltos: la capa de aplicación las ejecuta al confirmar, y las capas de
// interfaz pueden reutilizar los predicados para restringir opciones antes de
// que el usuario elija.
package stockrequest

import (
	"fmt"

	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
)

// Records agrupa los registros relacionados de una solicitud, ya resueltos por
// la capa de aplicación. Route es nil cuando la solicitud no fija ruta.
type Records struct {
	Company    *entity.Company
	Warehouse  *entity.Warehouse
	Location   *entity.Location
	Product    *entity.Product
	ProductUoM *entity.UnitOfMeasure
	RequestUoM *entity.UnitOfMeasure
	Route      *entity.Route
}

// LocationAllowed indica si la ubicación es elegible para solicitudes de la
// empresa: interna o de tránsito, salvo que la empresa admita ubicaciones
// virtuales.
func LocationAllowed(location *entity.Location, company *entity.Company) bool {
	if location == nil {
		return false
	}
	if location.IsPhysical() {
		return true
	}
	return company != nil && company.AllowVirtualLocations
}

// ProductRequestable indica si el producto es elegible para solicitudes:
// almacenable o consumible, nunca servicios.
func ProductRequestable(product *entity.Product) bool {
	return product != nil && product.IsRequestable()
}

// Validate comprueba las restricciones de registro de una solicitud contra sus
// registros relacionados y devuelve la primera violación encontrada.
// enforceRoute activa la comprobación de pertenencia de la ruta elegida al
// conjunto de rutas aplicables.
func Validate(req *entity.StockRequest, rec Records, enforceRoute bool) error {
	if req == nil {
		return fmt.Errorf("%w: solicitud nula", domain.ErrInvalidInput)
	}
	if err := checkReferences(req, rec); err != nil {
		return err
	}
	if err := checkCompanyCoherence(req, rec); err != nil {
		return err
	}
	if !LocationAllowed(rec.Location, rec.Company) {
		return fmt.Errorf("%w: ubicación %q de tipo %s", domain.ErrLocationKindNotAllowed,
			rec.Location.Name, rec.Location.Kind)
	}
	if !ProductRequestable(rec.Product) {
		return fmt.Errorf("%w: producto %q de tipo %s", domain.ErrProductKindNotAllowed,
			rec.Product.Name, rec.Product.Kind)
	}
	if rec.RequestUoM.CategoryID != rec.ProductUoM.CategoryID {
		return fmt.Errorf("%w: la unidad %q no pertenece a la categoría de %q",
			domain.ErrUomCategoryMismatch, rec.RequestUoM.Name, rec.ProductUoM.Name)
	}
	if !req.QuantityCanonical.IsPositive() {
		return fmt.Errorf("%w: cantidad %s", domain.ErrNonPositiveQuantity,
			req.QuantityCanonical.String())
	}
	if enforceRoute && req.HasRoute() && !containsID(req.ApplicableRouteIDs, req.RouteID) {
		return fmt.Errorf("%w: ruta %s", domain.ErrRouteNotApplicable, req.RouteID)
	}
	return nil
}

// checkReferences exige que todos los registros obligatorios estén resueltos.
func checkReferences(req *entity.StockRequest, rec Records) error {
	switch {
	case req.CompanyID == "" || rec.Company == nil:
		return fmt.Errorf("%w: la solicitud requiere empresa", domain.ErrInvalidInput)
	case req.WarehouseID == "" || rec.Warehouse == nil:
		return fmt.Errorf("%w: la solicitud requiere bodega", domain.ErrInvalidInput)
	case req.LocationID == "" || rec.Location == nil:
		return fmt.Errorf("%w: la solicitud requiere ubicación", domain.ErrInvalidInput)
	case req.ProductID == "" || rec.Product == nil:
		return fmt.Errorf("%w: la solicitud requiere producto", domain.ErrInvalidInput)
	case req.UoMID == "" || rec.RequestUoM == nil || rec.ProductUoM == nil:
		return fmt.Errorf("%w: la solicitud requiere unidad de medida", domain.ErrInvalidInput)
	case req.HasRoute() && rec.Route == nil:
		return fmt.Errorf("%w: ruta %s no resuelta", domain.ErrInvalidInput, req.RouteID)
	}
	return nil
}

// checkCompanyCoherence valida que los registros relacionados pertenezcan a la
// empresa de la solicitud. Producto, ubicación y ruta sin empresa se consideran
// compartidos; la bodega siempre tiene empresa.
func checkCompanyCoherence(req *entity.StockRequest, rec Records) error {
	if rec.Warehouse.CompanyID != req.CompanyID {
		return fmt.Errorf("%w: bodega %q", domain.ErrCompanyMismatch, rec.Warehouse.Name)
	}
	if rec.Location.CompanyID != "" && rec.Location.CompanyID != req.CompanyID {
		return fmt.Errorf("%w: ubicación %q", domain.ErrCompanyMismatch, rec.Location.Name)
	}
	if rec.Product.CompanyID != "" && rec.Product.CompanyID != req.CompanyID {
		return fmt.Errorf("%w: producto %q", domain.ErrCompanyMismatch, rec.Product.Name)
	}
	if rec.Route != nil && rec.Route.CompanyID != "" && rec.Route.CompanyID != req.CompanyID {
		return fmt.Errorf("%w: ruta %q", domain.ErrCompanyMismatch, rec.Route.Name)
	}
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
