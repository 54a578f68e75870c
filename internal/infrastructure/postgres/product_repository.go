package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, code, price, stock, min_stock, category, unit, supplier, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Code, p.Price, p.Stock, p.MinStock,
		string(p.Category), string(p.Unit), p.Supplier, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if derr := dataError(err, ""); derr != nil {
			return derr
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, activo o no.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByIDForUpdate igual que GetByID pero con SELECT ... FOR UPDATE.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

// GetByCode obtiene un producto por código (ya normalizado).
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE code = $1`, code)
}

// List lista productos por nombre aplicando los filtros presentes.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != nil {
		args = append(args, string(*f.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		where = append(where, fmt.Sprintf("active = $%d", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, likePattern(s))
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR code ILIKE $%d)", n, n, n))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name ASC, id ASC`
	return r.getMany(ctx, query, args...)
}

// ListLowStock productos activos con stock <= min_stock, por stock ascendente.
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE active = TRUE AND stock <= min_stock
		ORDER BY stock ASC, name ASC`
	return r.getMany(ctx, query)
}

// Update reescribe todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, code = $4, price = $5, stock = $6, min_stock = $7,
			category = $8, unit = $9, supplier = $10, active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Code, p.Price, p.Stock, p.MinStock,
		string(p.Category), string(p.Unit), p.Supplier, p.Active, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err, "products_stock_check") {
			return domain.ErrInvalidStock
		}
		if derr := dataError(err, ""); derr != nil {
			return derr
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetStock fija el stock a un valor absoluto.
func (r *ProductRepo) SetStock(ctx context.Context, id string, stock int, at time.Time) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + productColumns
	p, err := r.getOne(ctx, query, id, stock, at)
	if err != nil {
		if isCheckViolation(err, "products_stock_check") {
			return nil, domain.ErrInvalidStock
		}
		if derr := dataError(err, "stock"); derr != nil {
			return nil, derr
		}
	}
	return p, err
}

// ApplyStockDelta suma delta en una sola sentencia; la condición del WHERE impide stock negativo
// aunque dos peticiones concurrentes lean el mismo valor.
func (r *ProductRepo) ApplyStockDelta(ctx context.Context, id string, delta int, at time.Time) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = stock + $2, updated_at = $3
		WHERE id = $1 AND stock + $2 >= 0
		RETURNING ` + productColumns
	p, err := r.getOne(ctx, query, id, delta, at)
	if err != nil {
		// stock + delta fuera de INTEGER: el aumento no cabe en la columna.
		if derr := dataError(err, "quantity"); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	// Ninguna fila: el producto no existe o el stock no alcanza.
	current, err := r.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}
	return nil, &domain.InsufficientStockError{Current: current.Stock, Requested: -delta}
}

// SetActive activa o desactiva el producto (borrado lógico).
func (r *ProductRepo) SetActive(ctx context.Context, id string, active bool, at time.Time) (*entity.Product, error) {
	query := `
		UPDATE products SET active = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + productColumns
	return r.getOne(ctx, query, id, active, at)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) getMany(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p              entity.Product
		category, unit string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Code, &p.Price, &p.Stock, &p.MinStock,
		&category, &unit, &p.Supplier, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = entity.Category(category)
	p.Unit = entity.Unit(unit)
	return &p, nil
}
