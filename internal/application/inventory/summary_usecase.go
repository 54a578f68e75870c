package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	"github.com/jhoicas/quimicos-inventario/internal/application/usecase"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/inventory"
	"github.com/jhoicas/quimicos-inventario/internal/domain/repository"
)

// ErrReportUnavailable no hay generador de reportes configurado.
var ErrReportUnavailable = errors.New("generador de reportes no configurado")

// InventoryUseCase vista de inventario: estadísticas y reporte PDF.
// Cada llamada lee un snapshot nuevo de productos activos; no hay caché.
type InventoryUseCase struct {
	repo   repository.ProductRepository
	report ReportGenerator
	topN   int
	now    func() time.Time
}

// NewInventoryUseCase construye el caso de uso. report puede ser nil.
func NewInventoryUseCase(repo repository.ProductRepository, report ReportGenerator, defaultTopN int) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, report: report, topN: defaultTopN, now: time.Now}
}

// DefaultTopN tamaño de ranking cuando el cliente no envía ?top.
func (uc *InventoryUseCase) DefaultTopN() int { return uc.topN }

// Summary estadísticas del inventario activo. topN < 0 usa el valor por defecto.
func (uc *InventoryUseCase) Summary(ctx context.Context, topN int) (*dto.InventorySummaryDTO, error) {
	products, err := uc.activeProducts(ctx)
	if err != nil {
		return nil, err
	}
	if topN < 0 {
		topN = uc.topN
	}
	out := buildSummary(products, topN)
	return &out, nil
}

// Report genera el PDF con el resumen y el listado completo de productos activos.
func (uc *InventoryUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, ErrReportUnavailable
	}
	products, err := uc.activeProducts(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		rows = append(rows, usecase.ToProductResponse(&products[i]))
	}
	return uc.report.GenerateInventoryReport(ctx, Report{
		Title:       "Reporte de Inventario",
		GeneratedAt: uc.now(),
		Summary:     buildSummary(products, uc.topN),
		Products:    rows,
	})
}

func (uc *InventoryUseCase) activeProducts(ctx context.Context) ([]entity.Product, error) {
	active := true
	list, err := uc.repo.List(ctx, repository.ProductFilter{Active: &active})
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	return products, nil
}

func buildSummary(products []entity.Product, topN int) dto.InventorySummaryDTO {
	s := inventory.Summarize(products, topN)

	out := dto.InventorySummaryDTO{
		Success:         true,
		TotalProducts:   s.TotalProducts,
		TotalValue:      s.TotalValue,
		OutOfStockCount: s.OutOfStock,
		LowStockCount:   s.LowStock,
		ByCategory:      make([]dto.CategorySummaryDTO, 0, len(s.ByCategory)),
		TopByStock:      toRanked(s.TopByStock),
		TopByValue:      toRanked(s.TopByValue),
		LowStock:        []dto.ProductResponse{},
	}
	// Orden fijo de categorías para que la respuesta sea estable.
	for _, c := range entity.Categories {
		if ct, ok := s.ByCategory[c]; ok {
			out.ByCategory = append(out.ByCategory, dto.CategorySummaryDTO{
				Category:   string(c),
				Count:      ct.Count,
				TotalValue: ct.Value,
			})
		}
	}
	for i := range products {
		if products[i].IsLowStock() {
			out.LowStock = append(out.LowStock, usecase.ToProductResponse(&products[i]))
		}
	}
	return out
}

func toRanked(items []inventory.RankedProduct) []dto.RankedProductDTO {
	out := make([]dto.RankedProductDTO, 0, len(items))
	for _, r := range items {
		out = append(out, dto.RankedProductDTO{
			ID:       r.Product.ID,
			Code:     r.Product.Code,
			Name:     r.Product.Name,
			Stock:    r.Product.Stock,
			MinStock: r.Product.MinStock,
			Price:    r.Product.Price,
			Value:    r.Value,
		})
	}
	return out
}
