package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/quimicos-inventario/internal/application/inventory"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/repository"
)

// listOnlyRepo solo implementa List; cualquier otro método entra en pánico.
type listOnlyRepo struct {
	repository.ProductRepository
	products []*entity.Product
	filters  []repository.ProductFilter
	err      error
}

func (r *listOnlyRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.filters = append(r.filters, f)
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Product
	for _, p := range r.products {
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type captureReport struct {
	got appinventory.Report
}

func (c *captureReport) GenerateInventoryReport(_ context.Context, r appinventory.Report) ([]byte, error) {
	c.got = r
	return []byte("%PDF-1.3"), nil
}

func product(id string, cat entity.Category, price int64, stock, minStock int, active bool) *entity.Product {
	return &entity.Product{
		ID: id, Name: "P" + id, Code: "C" + id,
		Price: decimal.NewFromInt(price), Stock: stock, MinStock: minStock,
		Category: cat, Unit: entity.UnitKg, Active: active,
	}
}

func sampleRepo() *listOnlyRepo {
	return &listOnlyRepo{products: []*entity.Product{
		product("1", entity.CategorySolventes, 10, 100, 10, true),  // valor 1000
		product("2", entity.CategoryQuimicos, 500, 4, 10, true),    // valor 2000, bajo
		product("3", entity.CategoryQuimicos, 50, 0, 5, true),      // sin stock
		product("4", entity.CategoryEquipos, 9999, 9999, 1, false), // inactivo: no cuenta
	}}
}

func TestSummary_SoloProductosActivos(t *testing.T) {
	repo := sampleRepo()
	uc := appinventory.NewInventoryUseCase(repo, nil, 5)

	out, err := uc.Summary(context.Background(), -1)
	require.NoError(t, err)

	require.Len(t, repo.filters, 1)
	require.NotNil(t, repo.filters[0].Active)
	assert.True(t, *repo.filters[0].Active)

	assert.True(t, out.Success)
	assert.Equal(t, 3, out.TotalProducts)
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, 1, out.OutOfStockCount)
	assert.Equal(t, 1, out.LowStockCount)

	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Químicos", out.ByCategory[0].Category, "orden fijo de categorías")
	assert.Equal(t, 2, out.ByCategory[0].Count)
	assert.True(t, out.ByCategory[0].TotalValue.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "Solventes", out.ByCategory[1].Category)

	require.Len(t, out.TopByStock, 3)
	assert.Equal(t, "1", out.TopByStock[0].ID)
	require.Len(t, out.TopByValue, 3)
	assert.Equal(t, "2", out.TopByValue[0].ID)

	ids := []string{}
	for _, p := range out.LowStock {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"2", "3"}, ids)
}

func TestSummary_TopN(t *testing.T) {
	uc := appinventory.NewInventoryUseCase(sampleRepo(), nil, 5)

	out, err := uc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, out.TopByStock, 1)
	assert.Len(t, out.TopByValue, 1)

	out, err = uc.Summary(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, out.TopByStock)
	assert.NotNil(t, out.TopByStock, "se serializa como [] y no como null")
}

func TestSummary_InventarioVacio(t *testing.T) {
	uc := appinventory.NewInventoryUseCase(&listOnlyRepo{}, nil, 5)

	out, err := uc.Summary(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalProducts)
	assert.True(t, out.TotalValue.IsZero())
	assert.Empty(t, out.ByCategory)
	assert.Empty(t, out.LowStock)
}

func TestSummary_ErrorDelRepositorio(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := appinventory.NewInventoryUseCase(&listOnlyRepo{err: boom}, nil, 5)

	_, err := uc.Summary(context.Background(), -1)
	assert.ErrorIs(t, err, boom)
}

func TestReport(t *testing.T) {
	gen := &captureReport{}
	uc := appinventory.NewInventoryUseCase(sampleRepo(), gen, 2)

	pdf, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)

	assert.Len(t, gen.got.Products, 3)
	assert.Equal(t, 3, gen.got.Summary.TotalProducts)
	assert.Len(t, gen.got.Summary.TopByValue, 2, "usa el top por defecto")
	assert.False(t, gen.got.GeneratedAt.IsZero())
}

func TestReport_SinGenerador(t *testing.T) {
	uc := appinventory.NewInventoryUseCase(sampleRepo(), nil, 5)
	_, err := uc.Report(context.Background())
	assert.ErrorIs(t, err, appinventory.ErrReportUnavailable)
}
