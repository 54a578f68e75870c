// Package inventory contiene servicios de dominio puros sobre el inventario.
package inventory

import (
	"sort"

	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CategoryTotals cantidad de productos y valor acumulado de una categoría.
type CategoryTotals struct {
	Count int
	Value decimal.Decimal
}

// RankedProduct producto dentro de un ranking con su valor de inventario.
type RankedProduct struct {
	Product entity.Product
	Value   decimal.Decimal
}

// Summary estadísticas derivadas de un snapshot de productos.
type Summary struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	OutOfStock    int // stock == 0
	LowStock      int // 0 < stock <= stock mínimo
	ByCategory    map[entity.Category]CategoryTotals
	TopByStock    []RankedProduct
	TopByValue    []RankedProduct
}

// Summarize calcula las estadísticas del inventario sobre products.
// Función pura: no guarda estado ni cachea; el resultado depende solo del snapshot recibido.
// Los rankings usan orden estable, los empates conservan el orden de entrada.
func Summarize(products []entity.Product, topN int) Summary {
	s := Summary{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		ByCategory:    make(map[entity.Category]CategoryTotals),
	}

	ranked := make([]RankedProduct, 0, len(products))
	for _, p := range products {
		value := p.InventoryValue()
		s.TotalValue = s.TotalValue.Add(value)

		if p.IsOutOfStock() {
			s.OutOfStock++
		} else if p.IsLowStock() {
			s.LowStock++
		}

		ct := s.ByCategory[p.Category]
		ct.Count++
		ct.Value = ct.Value.Add(value)
		s.ByCategory[p.Category] = ct

		ranked = append(ranked, RankedProduct{Product: p, Value: value})
	}

	s.TopByStock = topBy(ranked, topN, func(a, b RankedProduct) bool {
		return a.Product.Stock > b.Product.Stock
	})
	s.TopByValue = topBy(ranked, topN, func(a, b RankedProduct) bool {
		return a.Value.GreaterThan(b.Value)
	})
	return s
}

func topBy(items []RankedProduct, n int, less func(a, b RankedProduct) bool) []RankedProduct {
	if n <= 0 || len(items) == 0 {
		return []RankedProduct{}
	}
	sorted := make([]RankedProduct, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
