package stockrequest

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ursais/stock-logistics-request/internal/application/dto"
	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/domain/repository"
	"github.com/ursais/stock-logistics-request/internal/domain/stockrequest"
	"github.com/ursais/stock-logistics-request/pkg/logger"
)

// Config ajustes del motor de solicitudes.
type Config struct {
	// EnforceRouteMembership exige al confirmar que la ruta elegida esté entre
	// las aplicables. Desactivado, la pertenencia queda solo consultiva.
	EnforceRouteMembership bool
}

// DefaultConfig valores de fábrica del motor.
func DefaultConfig() Config {
	return Config{EnforceRouteMembership: true}
}

// StockRequestUseCase es el motor de solicitudes de stock: construye
// borradores con valores por defecto, aplica la cascada de consistencia,
// resuelve rutas aplicables, normaliza cantidades y confirma lotes validados.
// Nunca muta datos maestros.
type StockRequestUseCase struct {
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	uomRepo       repository.UoMRepository
	routeRepo     repository.RouteRepository
	requestRepo   repository.StockRequestRepository
	sequencer     NameSequencer
	validate      *validator.Validate
	cfg           Config
	log           *logger.Logger
}

// NewStockRequestUseCase construye el motor con todas sus dependencias.
// log puede ser nil: en ese caso no se emite traza alguna.
func NewStockRequestUseCase(
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	uomRepo repository.UoMRepository,
	routeRepo repository.RouteRepository,
	requestRepo repository.StockRequestRepository,
	sequencer NameSequencer,
	cfg Config,
	log *logger.Logger,
) *StockRequestUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockRequestUseCase{
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		uomRepo:       uomRepo,
		routeRepo:     routeRepo,
		requestRepo:   requestRepo,
		sequencer:     sequencer,
		validate:      validator.New(),
		cfg:           cfg,
		log:           log,
	}
}

// NewRequest construye un borrador con los valores por defecto: primera
// bodega de la empresa, su ubicación de existencias y la unidad base del
// producto, salvo que la entrada los fije. El borrador no se persiste; eso
// ocurre al confirmar el lote.
func (uc *StockRequestUseCase) NewRequest(in dto.CreateStockRequestInput) (*entity.StockRequest, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, in.CompanyID)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}

	// Bodega y ubicación por defecto cuando la entrada no las trae.
	warehouseID := in.WarehouseID
	locationID := in.LocationID
	if warehouseID == "" {
		warehouse, err := uc.warehouseRepo.FindFirstForCompany(in.CompanyID)
		if err != nil {
			return nil, err
		}
		if warehouse != nil {
			warehouseID = warehouse.ID
			if locationID == "" {
				locationID = warehouse.DefaultStockLocationID
			}
		}
	} else if locationID == "" {
		warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, warehouseID)
		}
		locationID = warehouse.DefaultStockLocationID
	}

	uomID := in.UoMID
	if uomID == "" {
		uomID = product.UoMID
	}

	origin := entity.OriginStandalone
	if in.OrderID != "" {
		origin = entity.OriginOrder
	}

	now := time.Now()
	req := &entity.StockRequest{
		ID:                 uuid.New().String(),
		Name:               entity.NamePlaceholder,
		CompanyID:          in.CompanyID,
		WarehouseID:        warehouseID,
		LocationID:         locationID,
		RouteID:            in.RouteID,
		ProductID:          in.ProductID,
		UoMID:              uomID,
		QuantityRequested:  in.Quantity,
		ProcurementGroupID: in.ProcurementGroupID,
		Origin:             origin,
		OrderID:            in.OrderID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.RecomputeDerived(req); err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("request_id", req.ID).
		Str("bodega", req.WarehouseID).
		Str("ubicacion", req.LocationID).
		Msg("borrador de solicitud construido")
	return req, nil
}

// RecomputeDerived recalcula los campos derivados: cantidad canónica y rutas
// aplicables. Re-entrante e idempotente.
func (uc *StockRequestUseCase) RecomputeDerived(req *entity.StockRequest) error {
	if err := uc.NormalizeQuantity(req); err != nil {
		return err
	}
	return uc.ComputeApplicableRoutes([]*entity.StockRequest{req})
}

// Commit valida y persiste el lote completo: refresca derivados, comprueba
// las restricciones registro a registro, asigna folios a los nombres
// provisionales y guarda todo o nada. La primera violación aborta el lote.
func (uc *StockRequestUseCase) Commit(batch []*entity.StockRequest) error {
	if len(batch) == 0 {
		return nil
	}

	// 1. Derivados frescos; confiar en los del borrador sería frágil.
	for _, req := range batch {
		if err := uc.NormalizeQuantity(req); err != nil {
			return err
		}
	}
	if err := uc.ComputeApplicableRoutes(batch); err != nil {
		return err
	}

	// 2. Restricciones de registro.
	for _, req := range batch {
		rec, err := uc.resolveRecords(req)
		if err != nil {
			return err
		}
		if err := stockrequest.Validate(req, rec, uc.cfg.EnforceRouteMembership); err != nil {
			uc.log.Warn().Str("request_id", req.ID).Err(err).Msg("lote rechazado")
			return err
		}
	}

	// 3. Folios para los nombres provisionales.
	now := time.Now()
	for _, req := range batch {
		if req.Name == "" || req.Name == entity.NamePlaceholder {
			name, err := uc.sequencer.Next(req.CompanyID)
			if err != nil {
				return err
			}
			req.Name = name
		}
		req.UpdatedAt = now
	}

	// 4. Persistencia todo-o-nada.
	if err := uc.requestRepo.CreateBatch(batch); err != nil {
		return err
	}
	uc.log.Info().Int("solicitudes", len(batch)).Msg("lote confirmado")
	return nil
}

// Amend revalida y guarda una solicitud ya confirmada tras una edición:
// refresca derivados, corre las mismas restricciones que Commit y actualiza.
func (uc *StockRequestUseCase) Amend(req *entity.StockRequest) error {
	if req == nil {
		return fmt.Errorf("%w: solicitud nula", domain.ErrInvalidInput)
	}
	if err := uc.RecomputeDerived(req); err != nil {
		return err
	}
	rec, err := uc.resolveRecords(req)
	if err != nil {
		return err
	}
	if err := stockrequest.Validate(req, rec, uc.cfg.EnforceRouteMembership); err != nil {
		return err
	}
	req.UpdatedAt = time.Now()
	return uc.requestRepo.Update(req)
}

// GetByID devuelve la solicitud persistida o nil si no existe.
func (uc *StockRequestUseCase) GetByID(id string) (*entity.StockRequest, error) {
	return uc.requestRepo.GetByID(id)
}

// ListByCompany lista las solicitudes persistidas de la empresa.
func (uc *StockRequestUseCase) ListByCompany(companyID string) ([]*entity.StockRequest, error) {
	return uc.requestRepo.ListByCompany(companyID)
}

// resolveRecords resuelve los registros relacionados que las validaciones
// necesitan. Un identificador presente pero desconocido es ErrNotFound; los
// vacíos quedan nil y la validación los reporta como faltantes.
func (uc *StockRequestUseCase) resolveRecords(req *entity.StockRequest) (stockrequest.Records, error) {
	var rec stockrequest.Records
	var err error

	if req.CompanyID != "" {
		if rec.Company, err = uc.companyRepo.GetByID(req.CompanyID); err != nil {
			return rec, err
		}
		if rec.Company == nil {
			return rec, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, req.CompanyID)
		}
	}
	if req.WarehouseID != "" {
		if rec.Warehouse, err = uc.warehouseRepo.GetByID(req.WarehouseID); err != nil {
			return rec, err
		}
		if rec.Warehouse == nil {
			return rec, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, req.WarehouseID)
		}
	}
	if req.LocationID != "" {
		if rec.Location, err = uc.locationRepo.GetByID(req.LocationID); err != nil {
			return rec, err
		}
		if rec.Location == nil {
			return rec, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, req.LocationID)
		}
	}
	if req.ProductID != "" {
		if rec.Product, err = uc.productRepo.GetByID(req.ProductID); err != nil {
			return rec, err
		}
		if rec.Product == nil {
			return rec, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
		}
		if rec.ProductUoM, err = uc.uomRepo.GetByID(rec.Product.UoMID); err != nil {
			return rec, err
		}
		if rec.ProductUoM == nil {
			return rec, fmt.Errorf("%w: unidad %s", domain.ErrNotFound, rec.Product.UoMID)
		}
	}
	if req.UoMID != "" {
		if rec.RequestUoM, err = uc.uomRepo.GetByID(req.UoMID); err != nil {
			return rec, err
		}
		if rec.RequestUoM == nil {
			return rec, fmt.Errorf("%w: unidad %s", domain.ErrNotFound, req.UoMID)
		}
	}
	if req.RouteID != "" {
		if rec.Route, err = uc.routeRepo.GetByID(req.RouteID); err != nil {
			return rec, err
		}
		if rec.Route == nil {
			return rec, fmt.Errorf("%w: ruta %s", domain.ErrNotFound, req.RouteID)
		}
	}
	return rec, nil
}
