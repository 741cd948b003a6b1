package usecase

import (
	"context"

	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/domain"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/jhoicas/warehouse-picking-api/pkg/logger"
)

// ProductUseCase edición de productos: mrp y quantity son independientes.
// quantity sobreescribe scan_products (no incrementa) y el estado queda
// derivado del nuevo conteo; mrp no toca el estado. El guard de rol admin
// para quantity vive en la capa de rutas, no aquí.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// Update aplica los campos presentes. Devuelve domain.ErrInvalidInput si no
// viene ninguno (o quantity negativo); producto inexistente y fallos del
// store salen como respuesta soft (success=false), no como error.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (dto.UpdateProductResponse, error) {
	if in.MRP == nil && in.Quantity == nil {
		return dto.UpdateProductResponse{}, domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return dto.UpdateProductResponse{}, domain.ErrInvalidInput
	}

	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("update: fallo del store")
		return dto.UpdateProductResponse{Message: "Update failed"}, nil
	}
	if p == nil {
		return dto.UpdateProductResponse{Message: "Product not found"}, nil
	}

	if in.MRP != nil {
		if err := uc.repo.UpdateMRP(ctx, id, *in.MRP); err != nil {
			uc.log.Error().Err(err).Int64("product_id", id).Msg("update mrp: fallo del store")
			return dto.UpdateProductResponse{Message: "Update failed"}, nil
		}
		p.MRP = *in.MRP
	}
	if in.Quantity != nil {
		updated, err := uc.repo.SetScanCount(ctx, id, *in.Quantity)
		if err != nil {
			uc.log.Error().Err(err).Int64("product_id", id).Msg("update quantity: fallo del store")
			return dto.UpdateProductResponse{Message: "Update failed"}, nil
		}
		if updated == nil {
			return dto.UpdateProductResponse{Message: "Product not found"}, nil
		}
		updated.MRP = p.MRP
		p = updated
	}

	resp := dto.ToProductResponse(p)
	return dto.UpdateProductResponse{Success: true, Message: "Product updated", Product: &resp}, nil
}
