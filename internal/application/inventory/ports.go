package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
)

// Report datos de entrada del reporte de inventario.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Summary     dto.InventorySummaryDTO
	Products    []dto.ProductResponse // activos, ordenados por nombre
}

// ReportGenerator renderiza el reporte de inventario (PDF en producción).
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report Report) ([]byte, error)
}
