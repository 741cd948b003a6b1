package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/repository"
	"github.com/jhoicas/warehouse-picking-api/pkg/logger"
)

// Mensajes del contrato de escaneo (los consume la UI tal cual).
const (
	msgScanOK       = "Scan recorded successfully"
	msgScanExtra    = "Extra scan detected!"
	msgScanNotFound = "Barcode not found"
	msgScanFailed   = "Scan failed"
	msgUnscanOK     = "Scan removed"
	msgNoProduct    = "Product not found"
)

// ScanUseCase registra escaneos y des-escaneos. Todas las salidas son
// respuestas 200-shaped: los "no encontrado" y los fallos del store viajan
// como success=false, nunca como error HTTP.
type ScanUseCase struct {
	repo    repository.ProductRepository
	scanLog *ScanLog
	log     *logger.Logger
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(repo repository.ProductRepository, scanLog *ScanLog, log *logger.Logger) *ScanUseCase {
	return &ScanUseCase{repo: repo, scanLog: scanLog, log: log}
}

// Scan localiza el producto por código e incrementa su conteo en 1.
// warning=true cuando el nuevo conteo supera el requerido o cuando el
// código no corresponde a ningún producto.
func (uc *ScanUseCase) Scan(ctx context.Context, barcode, username string) dto.ScanResultResponse {
	p, err := uc.repo.FindByCode(ctx, barcode)
	if err != nil {
		uc.log.Error().Err(err).Str("barcode", barcode).Msg("scan: fallo del store")
		return dto.ScanResultResponse{Warning: true, Message: msgScanFailed, Barcode: barcode}
	}
	if p == nil {
		return dto.ScanResultResponse{Warning: true, Message: msgScanNotFound, Barcode: barcode}
	}
	updated, err := uc.repo.AddScan(ctx, p.ID, +1)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", p.ID).Msg("scan: fallo del store")
		return dto.ScanResultResponse{Warning: true, Message: msgScanFailed, Barcode: barcode}
	}
	if updated == nil {
		return dto.ScanResultResponse{Warning: true, Message: msgScanNotFound, Barcode: barcode}
	}

	uc.record(updated, barcode, +1, username)

	res := dto.ScanResultResponse{
		Success:       true,
		Message:       msgScanOK,
		Barcode:       barcode,
		NewCount:      updated.ScanProducts,
		Required:      updated.CountOfMRP,
		PickingStatus: string(updated.Status()),
	}
	if updated.ScanProducts > updated.CountOfMRP {
		res.Warning = true
		res.Message = msgScanExtra
	}
	return res
}

// Unscan decrementa el conteo en 1 con piso en 0.
func (uc *ScanUseCase) Unscan(ctx context.Context, productID int64, username string) dto.ScanResultResponse {
	updated, err := uc.repo.AddScan(ctx, productID, -1)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", productID).Msg("unscan: fallo del store")
		return dto.ScanResultResponse{Warning: true, Message: msgScanFailed}
	}
	if updated == nil {
		return dto.ScanResultResponse{Warning: true, Message: msgNoProduct}
	}

	uc.record(updated, updated.Barcode, -1, username)

	return dto.ScanResultResponse{
		Success:       true,
		Message:       msgUnscanOK,
		Barcode:       updated.Barcode,
		NewCount:      updated.ScanProducts,
		Required:      updated.CountOfMRP,
		PickingStatus: string(updated.Status()),
	}
}

// RecentEvents últimos eventos del log, del más reciente al más antiguo.
func (uc *ScanUseCase) RecentEvents(limit int) []dto.ScanEventResponse {
	events := uc.scanLog.Recent(limit)
	out := make([]dto.ScanEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ScanEventResponse{
			ID:        e.ID,
			ProductID: e.ProductID,
			Barcode:   e.Barcode,
			Delta:     e.Delta,
			NewCount:  e.NewCount,
			Status:    string(e.Status),
			Username:  e.Username,
			At:        e.At,
		})
	}
	return out
}

func (uc *ScanUseCase) record(p *entity.Product, barcode string, delta int, username string) {
	uc.scanLog.Append(entity.ScanEvent{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Barcode:   barcode,
		Delta:     delta,
		NewCount:  p.ScanProducts,
		Status:    p.Status(),
		Username:  username,
		At:        time.Now(),
	})
}
