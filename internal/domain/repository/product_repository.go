package repository

import (
	"context"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter filtros del listado; los campos vacíos no filtran (AND lógico).
// Status se compara contra el estado RECALCULADO, nunca contra un valor almacenado.
type ProductFilter struct {
	Category string
	Status   entity.PickingStatus
	Search   string // subcadena case-insensitive sobre barcode, UPC o etiqueta combinada
}

// SummaryResult agregados del tablero.
type SummaryResult struct {
	Total     int // todos los productos
	Scanned   int // con scan_products > 0
	Remaining int // con scan_products < count_of_mrp
}

// ProductRepository define el puerto de persistencia para la tabla de productos.
// Convención de la casa: los Get*/Find* devuelven (nil, nil) cuando no hay fila.
//
// AddScan y SetScanCount deben ser atómicos como sentencia única contra el
// store; AddScan nunca deja scan_products negativo (piso en 0).
type ProductRepository interface {
	Summary(ctx context.Context) (SummaryResult, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindByCode localiza por igualdad exacta en barcode/UPC o subcadena en la
	// etiqueta combinada; los matches exactos tienen prioridad, los empates de
	// subcadena se resuelven por orden de la colección (primer match).
	FindByCode(ctx context.Context, code string) (*entity.Product, error)
	// AddScan aplica un delta (+1/-1) a scan_products y devuelve la fila resultante.
	AddScan(ctx context.Context, id int64, delta int) (*entity.Product, error)
	// SetScanCount sobreescribe scan_products (edición directa de cantidad, admin).
	SetScanCount(ctx context.Context, id int64, count int) (*entity.Product, error)
	UpdateMRP(ctx context.Context, id int64, mrp decimal.Decimal) error
}
