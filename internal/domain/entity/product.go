package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PickingStatus estado derivado del picking de un producto.
// Nunca se almacena como verdad independiente: se recalcula siempre
// desde ScanProducts vs CountOfMRP (ver DeriveStatus).
type PickingStatus string

const (
	StatusPending PickingStatus = "PENDING"
	StatusPicked  PickingStatus = "PICKED"
	StatusExcess  PickingStatus = "EXCESS"
)

// ParsePickingStatus valida un filtro de estado recibido por query param.
// Devuelve "" si el valor no corresponde a ningún estado conocido.
func ParsePickingStatus(s string) PickingStatus {
	switch PickingStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending
	case StatusPicked:
		return StatusPicked
	case StatusExcess:
		return StatusExcess
	}
	return ""
}

// DeriveStatus regla única de reconciliación escaneo vs requerido.
// Toda lectura y toda mutación de ScanProducts pasa por aquí.
func DeriveStatus(scanned, required int) PickingStatus {
	switch {
	case scanned > required:
		return StatusExcess
	case scanned == required:
		return StatusPicked
	default:
		return StatusPending
	}
}

// Product fila de la tabla de productos de bodega.
// CountOfMRP es la cantidad esperada (objetivo del picking) y ScanProducts
// el acumulado de escaneos; el resto son atributos descriptivos del ERP.
type Product struct {
	ID         int64
	Company    string
	Category   string
	Brand      string
	BrandForm  string
	BarcodeMRP string // etiqueta combinada barcode+MRP que imprime el ERP
	Barcode    string
	UPC        string

	MRP decimal.Decimal // precio máximo de venta
	SLP decimal.Decimal
	RLP decimal.Decimal

	CountOfMRP   int
	ScanProducts int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status devuelve el PickingStatus derivado del estado actual.
func (p *Product) Status() PickingStatus {
	return DeriveStatus(p.ScanProducts, p.CountOfMRP)
}

// MatchesCode indica si un código de pistola corresponde a este producto:
// igualdad exacta con Barcode o UPC, o subcadena (case-insensitive) dentro
// de la etiqueta combinada BarcodeMRP.
func (p *Product) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	if p.Barcode == code || p.UPC == code {
		return true
	}
	return p.BarcodeMRP != "" &&
		strings.Contains(strings.ToLower(p.BarcodeMRP), strings.ToLower(code))
}

// Clone copia superficial; los repositorios en memoria devuelven copias para
// que los handlers no muten el estado interno del store.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
