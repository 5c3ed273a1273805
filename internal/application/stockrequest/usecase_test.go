package stockrequest_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ursais/stock-logistics-request/internal/application/dto"
	"github.com/ursais/stock-logistics-request/internal/application/stockrequest"
	"github.com/ursais/stock-logistics-request/internal/domain"
	"github.com/ursais/stock-logistics-request/internal/domain/entity"
	"github.com/ursais/stock-logistics-request/internal/infrastructure/memory"
)

// fixture arma el motor completo sobre los almacenes en memoria con un mundo
// maestro pequeño pero realista:
//
//	cia-1 (Alfa):  bod-1 → ubi-alm1, bod-2 → ubi-alm2
//	cia-2 (Beta):  bod-beta → ubi-beta
//	cia-3 (Gamma): sin bodegas
//
// Ubicaciones: ubi-alm1 → ubi-wh1 → ubi-root (y el espejo de bod-2), más un
// par en ciclo y una huérfana para los recorridos protegidos.
// Rutas: ruta-bodega (bod-1, entrega en ubi-wh1), ruta-producto (entrega en
// ubi-alm1), ruta-categoria (en cat-raiz, entrega en ubi-root) y ruta-lejana
// (entrega en ubi-beta, asignada al producto para verse filtrada).
type fixture struct {
	uc       *stockrequest.StockRequestUseCase
	requests *memory.RequestStore
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithConfig(t, stockrequest.DefaultConfig())
}

func newFixtureWithConfig(t *testing.T, cfg stockrequest.Config) *fixture {
	t.Helper()

	companies := memory.NewCompanyStore()
	warehouses := memory.NewWarehouseStore()
	locations := memory.NewLocationStore()
	products := memory.NewProductStore()
	categories := memory.NewCategoryStore()
	uoms := memory.NewUoMStore()
	routes := memory.NewRouteStore()
	requests := memory.NewRequestStore()

	// Unidades de medida.
	require.NoError(t, uoms.CreateCategory(&entity.UoMCategory{ID: "catuom-unidad", Name: "Unidad"}))
	require.NoError(t, uoms.CreateCategory(&entity.UoMCategory{ID: "catuom-peso", Name: "Peso"}))
	require.NoError(t, uoms.Create(&entity.UnitOfMeasure{
		ID: "uom-pieza", CategoryID: "catuom-unidad", Name: "Pieza",
		Factor: decimal.NewFromInt(1), Precision: 0,
	}))
	require.NoError(t, uoms.Create(&entity.UnitOfMeasure{
		ID: "uom-docena", CategoryID: "catuom-unidad", Name: "Docena",
		Factor: decimal.NewFromInt(12), Precision: 2,
	}))
	require.NoError(t, uoms.Create(&entity.UnitOfMeasure{
		ID: "uom-kg", CategoryID: "catuom-peso", Name: "Kilogramo",
		Factor: decimal.NewFromInt(1), Precision: 3,
	}))

	// Empresas.
	require.NoError(t, companies.Create(&entity.Company{ID: "cia-1", Name: "Alfa"}))
	require.NoError(t, companies.Create(&entity.Company{ID: "cia-2", Name: "Beta"}))
	require.NoError(t, companies.Create(&entity.Company{ID: "cia-3", Name: "Gamma"}))

	// Bodegas; el orden de alta importa para FindFirstForCompany.
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: "bod-1", CompanyID: "cia-1", Code: "WH1", Name: "Central",
		DefaultStockLocationID: "ubi-alm1",
	}))
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: "bod-2", CompanyID: "cia-1", Code: "WH2", Name: "Norte",
		DefaultStockLocationID: "ubi-alm2",
	}))
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: "bod-beta", CompanyID: "cia-2", Code: "WHB", Name: "Beta Central",
		DefaultStockLocationID: "ubi-beta",
	}))

	// Árbol de ubicaciones.
	for _, location := range []*entity.Location{
		{ID: "ubi-root", Name: "Física", Kind: entity.LocationKindView},
		{ID: "ubi-wh1", WarehouseID: "bod-1", ParentID: "ubi-root", Name: "WH1", Kind: entity.LocationKindView},
		{ID: "ubi-alm1", CompanyID: "cia-1", WarehouseID: "bod-1", ParentID: "ubi-wh1", Name: "WH1/Existencias", Kind: entity.LocationKindInternal},
		{ID: "ubi-wh2", WarehouseID: "bod-2", ParentID: "ubi-root", Name: "WH2", Kind: entity.LocationKindView},
		{ID: "ubi-alm2", CompanyID: "cia-1", WarehouseID: "bod-2", ParentID: "ubi-wh2", Name: "WH2/Existencias", Kind: entity.LocationKindInternal},
		{ID: "ubi-beta", CompanyID: "cia-2", WarehouseID: "bod-beta", ParentID: "ubi-root", Name: "Beta/Existencias", Kind: entity.LocationKindInternal},
		{ID: "ubi-ciclo-a", ParentID: "ubi-ciclo-b", Name: "Ciclo A", Kind: entity.LocationKindInternal},
		{ID: "ubi-ciclo-b", ParentID: "ubi-ciclo-a", Name: "Ciclo B", Kind: entity.LocationKindInternal},
		{ID: "ubi-huerfana", ParentID: "ubi-fantasma", Name: "Huérfana", Kind: entity.LocationKindInternal},
	} {
		require.NoError(t, locations.Create(location))
	}

	// Categorías de producto.
	require.NoError(t, categories.Create(&entity.ProductCategory{
		ID: "cat-raiz", Name: "Todos", RouteIDs: []string{"ruta-categoria"},
	}))
	require.NoError(t, categories.Create(&entity.ProductCategory{
		ID: "cat-hijo", ParentID: "cat-raiz", Name: "Ferretería",
	}))
	require.NoError(t, categories.Create(&entity.ProductCategory{
		ID: "cat-ciclo-a", ParentID: "cat-ciclo-b", Name: "Ciclo A",
	}))
	require.NoError(t, categories.Create(&entity.ProductCategory{
		ID: "cat-ciclo-b", ParentID: "cat-ciclo-a", Name: "Ciclo B",
	}))

	// Rutas.
	require.NoError(t, routes.Create(&entity.Route{
		ID: "ruta-bodega", Name: "Reposición WH1", WarehouseIDs: []string{"bod-1"},
		Rules: []entity.RouteRule{{ID: "regla-b1", Name: "a WH1", DestinationLocationID: "ubi-wh1"}},
	}))
	require.NoError(t, routes.Create(&entity.Route{
		ID: "ruta-producto", Name: "Directa",
		Rules: []entity.RouteRule{{ID: "regla-p1", Name: "a existencias", DestinationLocationID: "ubi-alm1"}},
	}))
	require.NoError(t, routes.Create(&entity.Route{
		ID: "ruta-categoria", Name: "Genérica",
		Rules: []entity.RouteRule{{ID: "regla-c1", Name: "a física", DestinationLocationID: "ubi-root"}},
	}))
	require.NoError(t, routes.Create(&entity.Route{
		ID: "ruta-lejana", Name: "Hacia Beta",
		Rules: []entity.RouteRule{{ID: "regla-l1", Name: "a beta", DestinationLocationID: "ubi-beta"}},
	}))

	// Productos.
	require.NoError(t, products.Create(&entity.Product{
		ID: "prod-tornillo", CompanyID: "cia-1", SKU: "TOR-001", Name: "Tornillo",
		Kind: entity.ProductKindStorable, CategoryID: "cat-hijo", UoMID: "uom-pieza",
		RouteIDs: []string{"ruta-producto", "ruta-lejana"},
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "prod-generico", SKU: "GEN-001", Name: "Genérico compartido",
		Kind: entity.ProductKindConsumable, CategoryID: "cat-hijo", UoMID: "uom-pieza",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "prod-servicio", CompanyID: "cia-1", SKU: "SRV-001", Name: "Instalación",
		Kind: entity.ProductKindService, CategoryID: "cat-hijo", UoMID: "uom-pieza",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "prod-ciclo", CompanyID: "cia-1", SKU: "CIC-001", Name: "Cíclico",
		Kind: entity.ProductKindStorable, CategoryID: "cat-ciclo-a", UoMID: "uom-pieza",
	}))

	uc := stockrequest.NewStockRequestUseCase(
		companies, warehouses, locations, products, categories, uoms, routes,
		requests, memory.NewSequencer(""), cfg, nil,
	)
	return &fixture{uc: uc, requests: requests}
}

// draft construye un borrador estándar: tornillo, 5 piezas, empresa Alfa.
func (f *fixture) draft(t *testing.T) *entity.StockRequest {
	t.Helper()
	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-1",
		ProductID: "prod-tornillo",
		Quantity:  decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	return req
}

// ── Valores por defecto del borrador ──────────────────────────────────────────

func TestNewRequest_AplicaValoresPorDefecto(t *testing.T) {
	f := newFixture(t)

	req := f.draft(t)

	assert.Equal(t, "/", req.Name, "el nombre nace provisional hasta confirmar")
	assert.Equal(t, "bod-1", req.WarehouseID, "primera bodega de la empresa")
	assert.Equal(t, "ubi-alm1", req.LocationID, "ubicación de existencias de esa bodega")
	assert.Equal(t, "uom-pieza", req.UoMID, "unidad base del producto")
	assert.Equal(t, entity.OriginStandalone, req.Origin)
	assert.True(t, req.QuantityCanonical.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, []string{"ruta-bodega", "ruta-categoria", "ruta-producto"},
		req.ApplicableRouteIDs)
}

func TestNewRequest_RespetaBodegaExplicita(t *testing.T) {
	f := newFixture(t)

	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID:   "cia-1",
		ProductID:   "prod-tornillo",
		WarehouseID: "bod-2",
		Quantity:    decimal.NewFromInt(1),
	})

	require.NoError(t, err)
	assert.Equal(t, "bod-2", req.WarehouseID)
	assert.Equal(t, "ubi-alm2", req.LocationID, "la ubicación por defecto sigue a la bodega elegida")
}

func TestNewRequest_OrigenOrdenConVinculo(t *testing.T) {
	f := newFixture(t)

	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-1",
		ProductID: "prod-tornillo",
		Quantity:  decimal.NewFromInt(1),
		OrderID:   "orden-7",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OriginOrder, req.Origin)
	assert.True(t, req.IsOrderDerived())
}

func TestNewRequest_EntradaInvalida(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.NewRequest(dto.CreateStockRequestInput{ProductID: "prod-tornillo"})

	require.Error(t, err, "sin empresa la entrada no pasa la validación")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewRequest_ProductoDesconocido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-1",
		ProductID: "prod-404",
		Quantity:  decimal.NewFromInt(1),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Confirmación de lotes ─────────────────────────────────────────────────────

func TestCommit_AsignaFoliosYPersiste(t *testing.T) {
	f := newFixture(t)
	primero := f.draft(t)
	segundo := f.draft(t)

	require.NoError(t, f.uc.Commit([]*entity.StockRequest{primero, segundo}))

	assert.Equal(t, "SR/00001", primero.Name)
	assert.Equal(t, "SR/00002", segundo.Name)

	persistida, err := f.uc.GetByID(primero.ID)
	require.NoError(t, err)
	require.NotNil(t, persistida)
	assert.Equal(t, "SR/00001", persistida.Name)
}

func TestCommit_LaSecuenciaContinuaEntreLotes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Commit([]*entity.StockRequest{f.draft(t)}))

	tercero := f.draft(t)
	require.NoError(t, f.uc.Commit([]*entity.StockRequest{tercero}))

	assert.Equal(t, "SR/00002", tercero.Name)
}

func TestCommit_RechazaBodegaDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID:   "cia-1",
		ProductID:   "prod-tornillo",
		WarehouseID: "bod-beta", // bodega de cia-2
		Quantity:    decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	err = f.uc.Commit([]*entity.StockRequest{req})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompanyMismatch)
}

func TestCommit_RechazaCantidadNoPositiva(t *testing.T) {
	f := newFixture(t)
	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-1",
		ProductID: "prod-tornillo",
		Quantity:  decimal.NewFromInt(-1),
	})
	require.NoError(t, err, "el borrador admite cantidades inválidas; la confirmación no")

	err = f.uc.Commit([]*entity.StockRequest{req})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
}

func TestCommit_RechazaProductoServicio(t *testing.T) {
	f := newFixture(t)
	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-1",
		ProductID: "prod-servicio",
		Quantity:  decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	err = f.uc.Commit([]*entity.StockRequest{req})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductKindNotAllowed)
}

func TestCommit_RechazaUbicacionVista(t *testing.T) {
	f := newFixture(t)
	req := f.draft(t)
	req.LocationID = "ubi-wh1" // vista: no elegible sin ubicaciones virtuales

	err := f.uc.Commit([]*entity.StockRequest{req})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationKindNotAllowed)
}

func TestCommit_NombreDuplicadoAbortaElLote(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Commit([]*entity.StockRequest{f.draft(t)}))

	bueno := f.draft(t)
	duplicado := f.draft(t)
	duplicado.Name = "SR/00001" // choca con la primera confirmación

	err := f.uc.Commit([]*entity.StockRequest{bueno, duplicado})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	list, lerr := f.uc.ListByCompany("cia-1")
	require.NoError(t, lerr)
	assert.Len(t, list, 1, "del lote rechazado no debe persistir nada")
}

func TestCommit_MismoNombreEnOtraEmpresaConvive(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Commit([]*entity.StockRequest{f.draft(t)}))

	// Una solicitud de cia-2 sobre el producto compartido, con el mismo folio
	// que la confirmada por cia-1.
	req, err := f.uc.NewRequest(dto.CreateStockRequestInput{
		CompanyID: "cia-2",
		ProductID: "prod-generico",
		Quantity:  decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	req.Name = "SR/00001"

	assert.NoError(t, f.uc.Commit([]*entity.StockRequest{req}),
		"la unicidad de nombre es por empresa, no global")
}

func TestCommit_LoteVacioNoHaceNada(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.uc.Commit(nil))

	list, err := f.uc.ListByCompany("cia-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ── Pertenencia de ruta al confirmar ──────────────────────────────────────────

func TestCommit_RutaFueraDelConjuntoFalla(t *testing.T) {
	f := newFixture(t)
	req := f.draft(t)
	req.RouteID = "ruta-lejana" // existe, pero no es aplicable aquí

	err := f.uc.Commit([]*entity.StockRequest{req})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRouteNotApplicable)
}

func TestCommit_RutaAplicablePasa(t *testing.T) {
	f := newFixture(t)
	req := f.draft(t)
	req.RouteID = "ruta-producto"

	assert.NoError(t, f.uc.Commit([]*entity.StockRequest{req}))
}

func TestCommit_SinEnforcementLaRutaEsConsultiva(t *testing.T) {
	f := newFixtureWithConfig(t, stockrequest.Config{EnforceRouteMembership: false})
	req := f.draft(t)
	req.RouteID = "ruta-lejana"

	assert.NoError(t, f.uc.Commit([]*entity.StockRequest{req}),
		"con la comprobación apagada la pertenencia no bloquea la confirmación")
}

// ── Edición de solicitudes confirmadas ────────────────────────────────────────

func TestAmend_RevalidaYActualiza(t *testing.T) {
	f := newFixture(t)
	req := f.draft(t)
	require.NoError(t, f.uc.Commit([]*entity.StockRequest{req}))

	req.QuantityRequested = decimal.NewFromInt(7)
	require.NoError(t, f.uc.Amend(req))

	persistida, err := f.uc.GetByID(req.ID)
	require.NoError(t, err)
	require.NotNil(t, persistida)
	assert.True(t, persistida.QuantityCanonical.Equal(decimal.NewFromInt(7)),
		"la cantidad canónica persistida debe reflejar la edición")
}

func TestAmend_RechazaEdicionInvalida(t *testing.T) {
	f := newFixture(t)
	req := f.draft(t)
	require.NoError(t, f.uc.Commit([]*entity.StockRequest{req}))

	req.QuantityRequested = decimal.Zero
	err := f.uc.Amend(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
}

func TestAmend_SolicitudNoPersistidaFalla(t *testing.T) {
	f := newFixture(t)
	req := f.draft(t)

	err := f.uc.Amend(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
