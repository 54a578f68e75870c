package repository

import (
	"context"
	"time"

	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
)

// ProductFilter filtros de lectura. Campos nil o vacíos no restringen.
type ProductFilter struct {
	Category *entity.Category
	Search   string // subcadena sin distinguir mayúsculas en nombre, descripción o código
	Active   *bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (solo dentro de TxRunner).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// ListLowStock productos activos con stock <= stock mínimo, ordenados por stock ascendente.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SetStock(ctx context.Context, id string, stock int, at time.Time) (*entity.Product, error)
	// ApplyStockDelta suma delta al stock en una sola sentencia condicional.
	// Si el resultado fuera negativo no escribe y devuelve *domain.InsufficientStockError.
	ApplyStockDelta(ctx context.Context, id string, delta int, at time.Time) (*entity.Product, error)
	SetActive(ctx context.Context, id string, active bool, at time.Time) (*entity.Product, error)
}

// TxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo ProductRepository) error) error
}
