package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
)

// LabelSheetGenerator puerto del generador de hojas de etiquetas (lo
// implementa infrastructure/pdf).
type LabelSheetGenerator interface {
	GenerateLabelSheet(products []*entity.Product) ([]byte, error)
}

// LabelUseCase exporta etiquetas Code128 de los productos (opcionalmente
// filtrados por categoría) para reimprimir en el piso de bodega.
type LabelUseCase struct {
	repo repository.ProductRepository
	gen  LabelSheetGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(repo repository.ProductRepository, gen LabelSheetGenerator) *LabelUseCase {
	return &LabelUseCase{repo: repo, gen: gen}
}

// Generate devuelve los bytes del PDF.
func (uc *LabelUseCase) Generate(ctx context.Context, category string) ([]byte, error) {
	products, err := uc.repo.List(ctx, repository.ProductFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	return uc.gen.GenerateLabelSheet(products)
}
