package usecase

import (
	"sync"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
)

// ScanLog ring buffer de eventos de escaneo. Auditoría en memoria para la
// UI; al reiniciar el proceso se pierde y eso está bien.
type ScanLog struct {
	mu   sync.Mutex
	buf  []entity.ScanEvent
	next int
	size int
}

// NewScanLog construye el log con la capacidad dada.
func NewScanLog(capacity int) *ScanLog {
	if capacity <= 0 {
		capacity = 500
	}
	return &ScanLog{buf: make([]entity.ScanEvent, capacity)}
}

// Append registra un evento, pisando el más antiguo si el buffer está lleno.
func (l *ScanLog) Append(e entity.ScanEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf[l.next] = e
	l.next = (l.next + 1) % len(l.buf)
	if l.size < len(l.buf) {
		l.size++
	}
}

// Recent devuelve hasta limit eventos, del más reciente al más antiguo.
func (l *ScanLog) Recent(limit int) []entity.ScanEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limit <= 0 || limit > l.size {
		limit = l.size
	}
	out := make([]entity.ScanEvent, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (l.next - i + len(l.buf)) % len(l.buf)
		out = append(out, l.buf[idx])
	}
	return out
}
