package dto

import (
	"time"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto; picking_status siempre va recalculado.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Company       string          `json:"company"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	BrandForm     string          `json:"brand_form"`
	BarcodeMRP    string          `json:"barcode_mrp"`
	Barcode       string          `json:"barcode"`
	UPC           string          `json:"upc"`
	MRP           decimal.Decimal `json:"mrp"`
	SLP           decimal.Decimal `json:"slp"`
	RLP           decimal.Decimal `json:"rlp"`
	CountOfMRP    int             `json:"count_of_mrp"`
	ScanProducts  int             `json:"scan_products"`
	PickingStatus string          `json:"picking_status"`
}

// ToProductResponse mapea la entidad derivando el estado en el momento.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Company:       p.Company,
		Category:      p.Category,
		Brand:         p.Brand,
		BrandForm:     p.BrandForm,
		BarcodeMRP:    p.BarcodeMRP,
		Barcode:       p.Barcode,
		UPC:           p.UPC,
		MRP:           p.MRP,
		SLP:           p.SLP,
		RLP:           p.RLP,
		CountOfMRP:    p.CountOfMRP,
		ScanProducts:  p.ScanProducts,
		PickingStatus: string(p.Status()),
	}
}

// SummaryResponse agregados del tablero.
type SummaryResponse struct {
	Total     int `json:"total"`
	Scanned   int `json:"scanned"`
	Remaining int `json:"remaining"`
}

// UpdateProductRequest campos independientes; mrp no recalcula estado,
// quantity sobreescribe scan_products y sí lo recalcula (solo admin).
type UpdateProductRequest struct {
	MRP      *decimal.Decimal `json:"mrp"`
	Quantity *int             `json:"quantity"`
}

// UpdateProductResponse resultado de la edición. Producto ausente cuando
// success=false (soft failure, HTTP 200).
type UpdateProductResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Product *ProductResponse `json:"product,omitempty"`
}

// ScanEventResponse entrada del log de escaneos.
type ScanEventResponse struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	Barcode   string    `json:"barcode"`
	Delta     int       `json:"delta"`
	NewCount  int       `json:"new_count"`
	Status    string    `json:"picking_status"`
	Username  string    `json:"username"`
	At        time.Time `json:"at"`
}
