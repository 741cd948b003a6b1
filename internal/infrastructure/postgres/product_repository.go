package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productCols columnas en el orden de scanProduct.
const productCols = `id, company, category, brand, brand_form, barcode_mrp, barcode, upc,
	mrp, slp, rlp, count_of_mrp, scan_products, created_at, updated_at`

// statusCase expresión SQL que replica entity.DeriveStatus: el filtro por
// estado se evalúa sobre el estado recalculado, no sobre nada almacenado.
const statusCase = `CASE
	WHEN scan_products > count_of_mrp THEN 'EXCESS'
	WHEN scan_products = count_of_mrp THEN 'PICKED'
	ELSE 'PENDING'
END`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Summary agregados del tablero en una sola consulta.
func (r *ProductRepo) Summary(ctx context.Context) (repository.SummaryResult, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE scan_products > 0),
			COUNT(*) FILTER (WHERE scan_products < count_of_mrp)
		FROM products`
	var s repository.SummaryResult
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.Scanned, &s.Remaining); err != nil {
		return repository.SummaryResult{}, fmt.Errorf("summary: %w", err)
	}
	return s, nil
}

// List aplica los filtros en SQL (AND) y devuelve del más reciente al más antiguo.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productCols + `
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR ` + statusCase + ` = $2)
		  AND ($3 = '' OR barcode ILIKE '%' || $3 || '%'
		               OR upc ILIKE '%' || $3 || '%'
		               OR barcode_mrp ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, f.Category, string(f.Status), f.Search)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Categories conjunto ordenado de categorías no vacías.
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindByCode localiza por barcode/UPC exacto o subcadena en la etiqueta
// combinada. Los matches exactos ganan; los empates de subcadena se
// resuelven por menor id (primer match, implementation-defined).
func (r *ProductRepo) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	if code == "" {
		return nil, nil
	}
	query := `
		SELECT ` + productCols + `
		FROM products
		WHERE barcode = $1 OR upc = $1 OR barcode_mrp ILIKE '%' || $1 || '%'
		ORDER BY (barcode = $1 OR upc = $1) DESC, id
		LIMIT 1`
	row := r.q.QueryRow(ctx, query, code)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find by code: %w", err)
	}
	return p, nil
}

// AddScan aplica el delta como sentencia única con piso en 0.
func (r *ProductRepo) AddScan(ctx context.Context, id int64, delta int) (*entity.Product, error) {
	query := `
		UPDATE products
		SET scan_products = GREATEST(0, scan_products + $2), updated_at = now()
		WHERE id = $1
		RETURNING ` + productCols
	row := r.q.QueryRow(ctx, query, id, delta)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("add scan: %w", err)
	}
	return p, nil
}

// SetScanCount sobreescribe el conteo (edición directa de cantidad).
func (r *ProductRepo) SetScanCount(ctx context.Context, id int64, count int) (*entity.Product, error) {
	query := `
		UPDATE products
		SET scan_products = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + productCols
	row := r.q.QueryRow(ctx, query, id, count)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("set scan count: %w", err)
	}
	return p, nil
}

// UpdateMRP actualiza solo el precio; no toca scan_products ni estado.
func (r *ProductRepo) UpdateMRP(ctx context.Context, id int64, mrp decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET mrp = $2, updated_at = now() WHERE id = $1`, id, mrp)
	if err != nil {
		return fmt.Errorf("update mrp: %w", err)
	}
	return nil
}

// scanProduct lee una fila en el orden de productCols.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Company, &p.Category, &p.Brand, &p.BrandForm,
		&p.BarcodeMRP, &p.Barcode, &p.UPC,
		&p.MRP, &p.SLP, &p.RLP,
		&p.CountOfMRP, &p.ScanProducts,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
