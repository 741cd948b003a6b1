package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/application/usecase"
)

// ScanHandler escaneo y des-escaneo desde la pistola del piso de bodega.
type ScanHandler struct {
	uc *usecase.ScanUseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(uc *usecase.ScanUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan godoc
// @Summary      Registrar escaneo
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "barcode"
// @Success      200  {object}  dto.ScanResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "barcode is required"})
	}
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "barcode is required"})
	}
	// "Barcode not found" y fallos del store salen aquí como 200 con
	// success=false: es contrato, no error HTTP.
	return c.JSON(h.uc.Scan(c.Context(), barcode, GetUsername(c)))
}

// Unscan godoc
// @Summary      Revertir un escaneo
// @Tags         scan
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ScanResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/scan/{id} [delete]
func (h *ScanHandler) Unscan(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid product id"})
	}
	return c.JSON(h.uc.Unscan(c.Context(), id, GetUsername(c)))
}

// Events godoc
// @Summary      Últimos escaneos (auditoría)
// @Tags         scan
// @Produce      json
// @Param        limit  query  int  false  "máximo de eventos"  default(50)
// @Success      200  {array}  dto.ScanEventResponse
// @Router       /api/scans [get]
func (h *ScanHandler) Events(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	return c.JSON(h.uc.RecentEvents(limit))
}
