package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-picking-api/internal/application/usecase"
)

// InventoryHandler consultas de solo lectura del tablero.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del picking
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary(c.Context()))
}

// Categories godoc
// @Summary      Categorías distintas
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories [get]
func (h *InventoryHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories(c.Context()))
}
