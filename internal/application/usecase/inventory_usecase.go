package usecase

import (
	"context"

	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/jhoicas/warehouse-picking-api/pkg/logger"
)

// InventoryUseCase consultas de solo lectura del tablero: resumen, listado
// con filtros y categorías. Los fallos del store se degradan a resultados
// vacíos (la ruta nunca ve el error; queda en el log).
type InventoryUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.ProductRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, log: log}
}

// Summary agrega total / escaneados / pendientes. Sin mutación.
func (uc *InventoryUseCase) Summary(ctx context.Context) dto.SummaryResponse {
	s, err := uc.repo.Summary(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("summary: fallo del store")
		return dto.SummaryResponse{}
	}
	return dto.SummaryResponse{Total: s.Total, Scanned: s.Scanned, Remaining: s.Remaining}
}

// List aplica los filtros (AND) y devuelve cada producto con su estado
// recalculado en el momento de la respuesta.
func (uc *InventoryUseCase) List(ctx context.Context, category, status, search string) []dto.ProductResponse {
	f := repository.ProductFilter{
		Category: category,
		Status:   entity.ParsePickingStatus(status),
		Search:   search,
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		uc.log.Error().Err(err).Msg("list products: fallo del store")
		return []dto.ProductResponse{}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ToProductResponse(p))
	}
	return items
}

// Categories conjunto ordenado de categorías no vacías.
func (uc *InventoryUseCase) Categories(ctx context.Context) []string {
	cats, err := uc.repo.Categories(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("categories: fallo del store")
		return []string{}
	}
	if cats == nil {
		cats = []string{}
	}
	return cats
}
