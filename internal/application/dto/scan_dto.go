package dto

// ScanRequest cuerpo de POST /api/scan.
type ScanRequest struct {
	Barcode string `json:"barcode"`
}

// ScanResultResponse contrato del escaneo. Siempre viaja con HTTP 200:
// success=false + warning=true señala un soft failure ("Barcode not found")
// que la UI distingue sin manejo de excepciones. Warning también se enciende
// cuando el conteo supera el requerido ("Extra scan detected!").
type ScanResultResponse struct {
	Success       bool   `json:"success"`
	Warning       bool   `json:"warning"`
	Message       string `json:"message"`
	Barcode       string `json:"barcode,omitempty"`
	NewCount      int    `json:"new_count"`
	Required      int    `json:"required"`
	PickingStatus string `json:"picking_status,omitempty"`
}
