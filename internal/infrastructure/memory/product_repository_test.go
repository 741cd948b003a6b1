package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/jhoicas/warehouse-picking-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// seisProductos set fijo: 2 de 6 con escaneos, 5 de 6 por debajo del requerido.
func seisProductos() []*entity.Product {
	return []*entity.Product{
		{Category: "Hair Care", Brand: "A", Barcode: "B-001", UPC: "U-001", BarcodeMRP: "A1-MRP10-B-001", CountOfMRP: 5},
		{Category: "Hair Care", Brand: "B", Barcode: "B-002", UPC: "U-002", BarcodeMRP: "B1-MRP20-B-002", CountOfMRP: 3, ScanProducts: 3},
		{Category: "Oral Care", Brand: "C", Barcode: "B-003", UPC: "U-003", BarcodeMRP: "C1-MRP30-B-003", CountOfMRP: 4, ScanProducts: 2},
		{Category: "Oral Care", Brand: "D", Barcode: "B-004", UPC: "U-004", BarcodeMRP: "D1-MRP40-B-004", CountOfMRP: 2},
		{Category: "", Brand: "E", Barcode: "B-005", UPC: "U-005", BarcodeMRP: "E1-MRP50-B-005", CountOfMRP: 6},
		{Category: "Fabric Care", Brand: "F", Barcode: "B-006", UPC: "U-006", BarcodeMRP: "F1-MRP60-B-006", CountOfMRP: 1},
	}
}

func newRepo(t *testing.T) *memory.ProductRepo {
	t.Helper()
	return memory.NewProductRepository(seisProductos())
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_Agregados(t *testing.T) {
	repo := newRepo(t)

	s, err := repo.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Scanned, "productos con scan_products > 0")
	assert.Equal(t, 5, s.Remaining, "productos con scan_products < count_of_mrp")
}

func TestSummary_NoMuta(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Summary(context.Background())
	require.NoError(t, err)

	list, err := repo.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 6)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: filtros AND sobre estado recalculado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltroPorEstadoRecalculado(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// Llevar B-006 (requerido 1) a EXCESS con dos escaneos.
	p, err := repo.FindByCode(ctx, "B-006")
	require.NoError(t, err)
	require.NotNil(t, p)
	_, err = repo.AddScan(ctx, p.ID, +1)
	require.NoError(t, err)
	_, err = repo.AddScan(ctx, p.ID, +1)
	require.NoError(t, err)

	excess, err := repo.List(ctx, repository.ProductFilter{Status: entity.StatusExcess})
	require.NoError(t, err)
	require.Len(t, excess, 1, "exactamente los productos cuyo estado derivado es EXCESS")
	assert.Equal(t, "B-006", excess[0].Barcode)

	picked, err := repo.List(ctx, repository.ProductFilter{Status: entity.StatusPicked})
	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, "B-002", picked[0].Barcode)
}

func TestList_FiltrosCombinados(t *testing.T) {
	repo := newRepo(t)

	list, err := repo.List(context.Background(), repository.ProductFilter{
		Category: "Oral Care",
		Status:   entity.StatusPending,
	})
	require.NoError(t, err)
	require.Len(t, list, 2, "AND lógico: categoría y estado a la vez")
}

func TestList_BusquedaCaseInsensitive(t *testing.T) {
	repo := newRepo(t)

	list, err := repo.List(context.Background(), repository.ProductFilter{Search: "b-00"})
	require.NoError(t, err)
	assert.Len(t, list, 6, "subcadena sobre barcode sin importar mayúsculas")

	list, err = repo.List(context.Background(), repository.ProductFilter{Search: "u-003"})
	require.NoError(t, err)
	require.Len(t, list, 1, "subcadena sobre UPC")
	assert.Equal(t, "B-003", list[0].Barcode)

	list, err = repo.List(context.Background(), repository.ProductFilter{Search: "e1-mrp50"})
	require.NoError(t, err)
	require.Len(t, list, 1, "subcadena sobre la etiqueta combinada")
}

func TestList_DevuelveCopias(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	list, err := repo.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	list[0].ScanProducts = 999

	again, err := repo.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.NotEqual(t, 999, again[0].ScanProducts, "mutar el resultado no toca el store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categories
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_OrdenadasYSinVacias(t *testing.T) {
	repo := newRepo(t)

	cats, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fabric Care", "Hair Care", "Oral Care"}, cats)
}

// ──────────────────────────────────────────────────────────────────────────────
// FindByCode
// ──────────────────────────────────────────────────────────────────────────────

func TestFindByCode_ExactoGanaASubcadena(t *testing.T) {
	// "B-001" es barcode exacto del primero y subcadena de todas las etiquetas
	// combinadas que lo contengan; el exacto debe ganar.
	repo := memory.NewProductRepository([]*entity.Product{
		{Brand: "etiqueta", Barcode: "X-900", BarcodeMRP: "PROMO-B-001-PACK", CountOfMRP: 1},
		{Brand: "exacto", Barcode: "B-001", BarcodeMRP: "A1-MRP10-B-001", CountOfMRP: 1},
	})

	p, err := repo.FindByCode(context.Background(), "B-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "exacto", p.Brand)
}

func TestFindByCode_SubcadenaPrimerMatch(t *testing.T) {
	repo := newRepo(t)

	// "MRP30" solo aparece en la etiqueta combinada de B-003.
	p, err := repo.FindByCode(context.Background(), "mrp30")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "B-003", p.Barcode)
}

func TestFindByCode_NoEncontrado(t *testing.T) {
	repo := newRepo(t)

	p, err := repo.FindByCode(context.Background(), "nonexistent-barcode")
	require.NoError(t, err)
	assert.Nil(t, p, "sin match: (nil, nil), el soft failure lo arma el caso de uso")
}

// ──────────────────────────────────────────────────────────────────────────────
// AddScan / SetScanCount / UpdateMRP
// ──────────────────────────────────────────────────────────────────────────────

func TestAddScan_PisoEnCero(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	p, err := repo.FindByCode(ctx, "B-001")
	require.NoError(t, err)

	// Des-escanear en 0 deja 0, nunca negativo.
	updated, err := repo.AddScan(ctx, p.ID, -1)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 0, updated.ScanProducts)
	assert.Equal(t, entity.StatusPending, updated.Status())
}

func TestAddScan_ProductoInexistente(t *testing.T) {
	repo := newRepo(t)

	updated, err := repo.AddScan(context.Background(), 9999, +1)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestSetScanCount_SobreescribeYDeriva(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	p, err := repo.FindByCode(ctx, "B-001") // requerido 5
	require.NoError(t, err)

	updated, err := repo.SetScanCount(ctx, p.ID, 5)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 5, updated.ScanProducts, "sobreescritura, no incremento")
	assert.Equal(t, entity.StatusPicked, updated.Status())
}

func TestUpdateMRP_NoTocaConteo(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	p, err := repo.FindByCode(ctx, "B-002") // ya PICKED
	require.NoError(t, err)

	require.NoError(t, repo.UpdateMRP(ctx, p.ID, decimal.RequireFromString("123.45")))

	after, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, after.MRP.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, p.ScanProducts, after.ScanProducts)
	assert.Equal(t, entity.StatusPicked, after.Status())
}
