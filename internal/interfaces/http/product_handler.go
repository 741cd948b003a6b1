package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-picking-api/internal/domain"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
)

// ProductHandler listado, edición y etiquetas de productos.
type ProductHandler struct {
	inventoryUC *usecase.InventoryUseCase
	productUC   *usecase.ProductUseCase
	labelUC     *usecase.LabelUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(inventoryUC *usecase.InventoryUseCase, productUC *usecase.ProductUseCase, labelUC *usecase.LabelUseCase) *ProductHandler {
	return &ProductHandler{inventoryUC: inventoryUC, productUC: productUC, labelUC: labelUC}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "filtro por categoría"
// @Param        status    query  string  false  "PENDING | PICKED | EXCESS (recalculado)"
// @Param        search    query  string  false  "subcadena sobre barcode/UPC/etiqueta"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.inventoryUC.List(
		c.Context(),
		c.Query("category"),
		c.Query("status"),
		c.Query("search"),
	))
}

// Update godoc
// @Summary      Editar producto (mrp y/o quantity)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "mrp y/o quantity"
// @Success      200  {object}  dto.UpdateProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid product id"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	// Autorización en la frontera, no en el dominio: sobreescribir el conteo
	// escaneado es privilegio de admin; editar solo el precio no lo es.
	if in.Quantity != nil && GetRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Admin privileges required"})
	}
	out, err := h.productUC.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "no updates provided"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(out)
}

// Labels godoc
// @Summary      Hoja de etiquetas Code128 (admin)
// @Tags         products
// @Produce      application/pdf
// @Param        category  query  string  false  "filtro por categoría"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/labels [get]
func (h *ProductHandler) Labels(c *fiber.Ctx) error {
	pdfBytes, err := h.labelUC.Generate(c.Context(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "could not generate labels"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="labels.pdf"`)
	return c.Send(pdfBytes)
}
