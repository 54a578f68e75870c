package dto

import "github.com/shopspring/decimal"

// CategorySummaryDTO totales de una categoría.
type CategorySummaryDTO struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// RankedProductDTO producto dentro de un ranking.
type RankedProductDTO struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Price    decimal.Decimal `json:"price"`
	Value    decimal.Decimal `json:"value"`
}

// InventorySummaryDTO respuesta de GET /api/inventory/summary.
type InventorySummaryDTO struct {
	Success         bool                 `json:"success"`
	TotalProducts   int                  `json:"total_products"`
	TotalValue      decimal.Decimal      `json:"total_value"`
	OutOfStockCount int                  `json:"out_of_stock_count"`
	LowStockCount   int                  `json:"low_stock_count"`
	ByCategory      []CategorySummaryDTO `json:"by_category"`
	TopByStock      []RankedProductDTO   `json:"top_by_stock"`
	TopByValue      []RankedProductDTO   `json:"top_by_value"`
	LowStock        []ProductResponse    `json:"low_stock"`
}
