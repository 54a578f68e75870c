package entity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
)

func validProduct() entity.Product {
	return entity.Product{
		Name:     "Ácido Sulfúrico 98%",
		Code:     "QUI-001",
		Price:    decimal.NewFromInt(45000),
		Stock:    150,
		MinStock: 30,
		Category: entity.CategoryQuimicos,
		Unit:     entity.UnitL,
		Active:   true,
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"qui-001":   "QUI-001",
		"  sol-01 ": "SOL-01",
		"QUI-001":   "QUI-001",
		"año-1":     "AÑO-1",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.NormalizeCode(in), in)
	}
}

func TestProduct_StockBajoYSinStock(t *testing.T) {
	p := validProduct()
	p.Stock, p.MinStock = 10, 10
	assert.True(t, p.IsLowStock(), "stock igual al mínimo es stock bajo")
	assert.False(t, p.IsOutOfStock())

	p.Stock = 11
	assert.False(t, p.IsLowStock())

	p.Stock = 0
	assert.True(t, p.IsOutOfStock())
	assert.True(t, p.IsLowStock())
}

func TestProduct_InventoryValue(t *testing.T) {
	p := validProduct()
	p.Price = decimal.RequireFromString("12.5")
	p.Stock = 4
	assert.True(t, p.InventoryValue().Equal(decimal.NewFromInt(50)))
}

func TestProduct_Validate(t *testing.T) {
	p := validProduct()
	require.NoError(t, p.Validate())

	tests := []struct {
		name  string
		mut   func(p *entity.Product)
		field string
	}{
		{"sin nombre", func(p *entity.Product) { p.Name = " " }, "name"},
		{"sin código", func(p *entity.Product) { p.Code = "" }, "code"},
		{"precio negativo", func(p *entity.Product) { p.Price = decimal.NewFromInt(-1) }, "price"},
		{"mínimo negativo", func(p *entity.Product) { p.MinStock = -1 }, "min_stock"},
		{"categoría desconocida", func(p *entity.Product) { p.Category = "Bebidas" }, "category"},
		{"unidad desconocida", func(p *entity.Product) { p.Unit = "Tonelada" }, "unit"},
		{"nombre largo", func(p *entity.Product) { p.Name = strings.Repeat("á", 201) }, "name"},
		{"código largo", func(p *entity.Product) { p.Code = strings.Repeat("Q", 51) }, "code"},
		{"proveedor largo", func(p *entity.Product) { p.Supplier = strings.Repeat("x", 201) }, "supplier"},
		{"precio fuera de NUMERIC(14,2)", func(p *entity.Product) { p.Price = entity.MaxPrice }, "price"},
		{"stock fuera de INTEGER", func(p *entity.Product) { p.Stock = entity.MaxStock + 1 }, "stock"},
		{"mínimo fuera de INTEGER", func(p *entity.Product) { p.MinStock = entity.MaxStock + 1 }, "min_stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mut(&p)
			err := p.Validate()
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "se esperaba ValidationError, se obtuvo %v", err)
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	p.Stock = -1
	assert.ErrorIs(t, p.Validate(), domain.ErrInvalidStock)
}

func TestParseStockOperation(t *testing.T) {
	op, err := entity.ParseStockOperation("sumar")
	require.NoError(t, err)
	assert.Equal(t, entity.OpIncrease, op)

	op, err = entity.ParseStockOperation("restar")
	require.NoError(t, err)
	assert.Equal(t, entity.OpDecrease, op)

	for _, invalid := range []string{"multiplicar", "SUMAR", "Restar", " restar ", " "} {
		_, err = entity.ParseStockOperation(invalid)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation, "%q", invalid)
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := entity.ParseCategory("  solventes ")
	assert.True(t, ok)
	assert.Equal(t, entity.CategorySolventes, c)

	c, ok = entity.ParseCategory("QUÍMICOS")
	assert.True(t, ok)
	assert.Equal(t, entity.CategoryQuimicos, c)

	c, ok = entity.ParseCategory("")
	assert.True(t, ok)
	assert.Equal(t, entity.CategoryOtros, c)

	c, ok = entity.ParseCategory("Metales")
	assert.False(t, ok)
	assert.False(t, c.Valid())
}
