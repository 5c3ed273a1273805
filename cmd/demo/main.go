// demo arma el motor de solicitudes de stock sobre los almacenes en memoria,
// siembra un catálogo maestro mínimo y confirma un lote de solicitudes,
// mostrando folios, rutas aplicables y cantidades canónicas.
//
// Uso: go run ./cmd/demo
package main

import (
	"github.com/shopspring/decimal"

	"github.com/ursais/stock-logistics-request/internal/application/dto"
	"github.com/ursais/stock-logistics-request/internal/application/stockrequest"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/infrastructure/memory"
	"github.com/ursais/stock-logistics-request/pkg/config"
	"github.com/ursais/stock-logistics-request/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando motor de solicitudes de stock")

	companyStore := memory.NewCompanyStore()
	warehouseStore := memory.NewWarehouseStore()
	locationStore := memory.NewLocationStore()
	productStore := memory.NewProductStore()
	categoryStore := memory.NewCategoryStore()
	uomStore := memory.NewUoMStore()
	routeStore := memory.NewRouteStore()
	requestStore := memory.NewRequestStore()
	sequencer := memory.NewSequencer(cfg.Engine.SequencePrefix)

	if err := seed(companyStore, warehouseStore, locationStore, productStore, categoryStore, uomStore, routeStore); err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo maestro")
	}

	engine := stockrequest.NewStockRequestUseCase(
		companyStore, warehouseStore, locationStore, productStore,
		categoryStore, uomStore, routeStore, requestStore,
		sequencer,
		stockrequest.Config{EnforceRouteMembership: cfg.Engine.EnforceRouteMembership},
		log,
	)

	// Borrador con valores por defecto: primera bodega de la empresa,
	// su ubicación de existencias y la unidad base del producto.
	tornillos, err := engine.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-acme",
		ProductID: "prod-tornillo",
		Quantity:  decimal.NewFromInt(500),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear borrador")
	}

	// Borrador en otra unidad: las cajas se normalizan a piezas al recalcular.
	cajas, err := engine.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-acme",
		ProductID: "prod-tornillo",
		Quantity:  decimal.NewFromFloat(2.5),
		UoMID:     "uom-caja",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear borrador en cajas")
	}

	if err := engine.Commit([]*entity.StockRequest{tornillos, cajas}); err != nil {
		log.Fatal().Err(err).Msg("confirmar lote")
	}

	confirmadas, err := engine.ListByCompany("cia-acme")
	if err != nil {
		log.Fatal().Err(err).Msg("listar solicitudes")
	}
	for _, req := range confirmadas {
		log.Info().
			Str("folio", req.Name).
			Str("producto", req.ProductID).
			Str("cantidad_canonica", req.QuantityCanonical.String()).
			Strs("rutas_aplicables", req.ApplicableRouteIDs).
			Msg("solicitud confirmada")
	}

	log.Info().Msg("demostración completada")
}

// seed puebla los almacenes con un catálogo maestro mínimo: una empresa con
// una bodega, su árbol de ubicaciones, unidades pieza/caja y un producto con
// rutas propias, de categoría y de bodega.
func seed(
	companies *memory.CompanyStore,
	warehouses *memory.WarehouseStore,
	locations *memory.LocationStore,
	products *memory.ProductStore,
	categories *memory.CategoryStore,
	uoms *memory.UoMStore,
	routes *memory.RouteStore,
) error {
	if err := companies.Create(&entity.Company{ID: "cia-acme", Name: "ACME S.A."}); err != nil {
		return err
	}

	if err := uoms.CreateCategory(&entity.UoMCategory{ID: "catuom-unidad", Name: "Unidades"}); err != nil {
		return err
	}
	if err := uoms.Create(&entity.UnitOfMeasure{
		ID: "uom-pieza", CategoryID: "catuom-unidad", Name: "Pieza",
		Factor: decimal.NewFromInt(1), Precision: 0,
	}); err != nil {
		return err
	}
	if err := uoms.Create(&entity.UnitOfMeasure{
		ID: "uom-caja", CategoryID: "catuom-unidad", Name: "Caja x100",
		Factor: decimal.NewFromInt(100), Precision: 2,
	}); err != nil {
		return err
	}

	if err := warehouses.Create(&entity.Warehouse{
		ID: "bod-central", CompanyID: "cia-acme", Code: "WH1",
		Name: "Bodega Central", DefaultStockLocationID: "ubi-existencias",
	}); err != nil {
		return err
	}
	for _, loc := range []*entity.Location{
		{ID: "ubi-raiz", Name: "Ubicaciones físicas", Kind: entity.LocationKindView},
		{ID: "ubi-bodega", WarehouseID: "bod-central", ParentID: "ubi-raiz", Name: "WH1", Kind: entity.LocationKindView},
		{ID: "ubi-existencias", CompanyID: "cia-acme", WarehouseID: "bod-central", ParentID: "ubi-bodega", Name: "WH1/Existencias", Kind: entity.LocationKindInternal},
	} {
		if err := locations.Create(loc); err != nil {
			return err
		}
	}

	for _, route := range []*entity.Route{
		{
			ID: "ruta-reabastecer", Name: "Reabastecer bodega",
			WarehouseIDs: []string{"bod-central"},
			Rules:        []entity.RouteRule{{ID: "regla-r1", Name: "Proveedor → WH1", DestinationLocationID: "ubi-bodega"}},
		},
		{
			ID: "ruta-compra", Name: "Comprar bajo demanda",
			Rules: []entity.RouteRule{{ID: "regla-c1", Name: "Compra → Existencias", DestinationLocationID: "ubi-existencias"}},
		},
	} {
		if err := routes.Create(route); err != nil {
			return err
		}
	}

	if err := categories.Create(&entity.ProductCategory{ID: "cat-ferreteria", Name: "Ferretería"}); err != nil {
		return err
	}
	return products.Create(&entity.Product{
		ID: "prod-tornillo", CompanyID: "cia-acme", SKU: "TOR-001",
		Name: "Tornillo 3/8", Kind: entity.ProductKindStorable,
		CategoryID: "cat-ferreteria", UoMID: "uom-pieza",
		RouteIDs: []string{"ruta-compra"},
	})
}
