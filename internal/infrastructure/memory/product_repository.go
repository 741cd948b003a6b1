// Package memory implementa el puerto de productos sobre una colección
// propia en memoria: es el store demo que arranca sin infraestructura.
// Misma semántica que el adaptador PostgreSQL; los handlers no distinguen.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo store en memoria, construido explícitamente e inyectado
// (nada de estado ambiente a nivel de paquete). El mutex protege la
// colección; cada operación es una sección crítica única, el equivalente
// a la sentencia atómica del store real.
type ProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	nextID   int64
}

// NewProductRepository construye el store con los productos semilla.
func NewProductRepository(seed []*entity.Product) *ProductRepo {
	r := &ProductRepo{nextID: 1}
	now := time.Now()
	for _, p := range seed {
		c := p.Clone()
		c.ID = r.nextID
		r.nextID++
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		c.UpdatedAt = c.CreatedAt
		r.products = append(r.products, c)
	}
	return r
}

// Summary agregados del tablero. Pura agregación, sin mutación.
func (r *ProductRepo) Summary(_ context.Context) (repository.SummaryResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := repository.SummaryResult{Total: len(r.products)}
	for _, p := range r.products {
		if p.ScanProducts > 0 {
			s.Scanned++
		}
		if p.ScanProducts < p.CountOfMRP {
			s.Remaining++
		}
	}
	return s, nil
}

// List filtra con AND lógico; el estado se deriva en el momento de comparar.
// Orden: el de inserción (el contrato de orden estricto es del store real).
func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Status != "" && p.Status() != f.Status {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		list = append(list, p.Clone())
	}
	return list, nil
}

// Categories conjunto ordenado de categorías no vacías.
func (r *ProductRepo) Categories(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	var cats []string
	for _, p := range r.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	sort.Strings(cats)
	return cats, nil
}

// GetByID (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.byID(id); p != nil {
		return p.Clone(), nil
	}
	return nil, nil
}

// FindByCode primero igualdad exacta barcode/UPC, después subcadena en la
// etiqueta combinada; el primer match en orden de colección gana.
func (r *ProductRepo) FindByCode(_ context.Context, code string) (*entity.Product, error) {
	if code == "" {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode == code || p.UPC == code {
			return p.Clone(), nil
		}
	}
	for _, p := range r.products {
		if p.MatchesCode(code) {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

// AddScan delta con piso en 0, dentro de la misma sección crítica.
func (r *ProductRepo) AddScan(_ context.Context, id int64, delta int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID(id)
	if p == nil {
		return nil, nil
	}
	p.ScanProducts += delta
	if p.ScanProducts < 0 {
		p.ScanProducts = 0
	}
	p.UpdatedAt = time.Now()
	return p.Clone(), nil
}

// SetScanCount sobreescribe el conteo.
func (r *ProductRepo) SetScanCount(_ context.Context, id int64, count int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID(id)
	if p == nil {
		return nil, nil
	}
	p.ScanProducts = count
	p.UpdatedAt = time.Now()
	return p.Clone(), nil
}

// UpdateMRP solo precio; no toca el conteo.
func (r *ProductRepo) UpdateMRP(_ context.Context, id int64, mrp decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID(id)
	if p == nil {
		return nil
	}
	p.MRP = mrp
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepo) byID(id int64) *entity.Product {
	for _, p := range r.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func matchesSearch(p *entity.Product, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Barcode), s) ||
		strings.Contains(strings.ToLower(p.UPC), s) ||
		strings.Contains(strings.ToLower(p.BarcodeMRP), s)
}
