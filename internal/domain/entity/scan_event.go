package entity

import "time"

// ScanEvent evento de auditoría de un escaneo o des-escaneo exitoso.
// Vive en un ring buffer en memoria; es una conveniencia para la UI,
// no verdad durable.
type ScanEvent struct {
	ID        string // uuid
	ProductID int64
	Barcode   string
	Delta     int // +1 escaneo, -1 des-escaneo
	NewCount  int
	Status    PickingStatus
	Username  string
	At        time.Time
}
