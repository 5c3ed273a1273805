package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los cuatro primeros son los fallos de validación centrales de las solicitudes
// de stock; siempre se envuelven con fmt.Errorf("%w: ...") indicando el campo
// o registro ofensor.
var (
	ErrCompanyMismatch     = errors.New("la empresa del registro relacionado no coincide con la de la solicitud")
	ErrUomCategoryMismatch = errors.New("la unidad de medida no pertenece a la categoría de la unidad del producto")
	ErrNonPositiveQuantity = errors.New("la cantidad de la solicitud debe ser estrictamente positiva")
	ErrDuplicateName       = errors.New("el nombre de la solicitud ya existe para la empresa")

	// Predicados de dominio evaluados tanto en la capa UI (restringir opciones)
	// como al confirmar (rechazar estados finales inválidos).
	ErrLocationKindNotAllowed = errors.New("la ubicación debe ser interna o de tránsito")
	ErrProductKindNotAllowed  = errors.New("el producto debe ser almacenable o consumible")
	ErrRouteNotApplicable     = errors.New("la ruta seleccionada no es aplicable a la solicitud")

	// Violación estructural, no de validación: la jerarquía de ubicaciones o de
	// categorías dejó de ser un árbol. No tiene recuperación significativa.
	ErrHierarchyCycle = errors.New("ciclo detectado en la jerarquía")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)
