package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/quimicos-inventario/internal/application/auth"
	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/repository"
)

// ProductUseCase catálogo de productos y motor de mutación de stock.
// Ninguna validación fallida escribe: el registro almacenado queda intacto.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto. El código se normaliza a mayúsculas y debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" || in.Price == nil {
		return nil, domain.ErrMissingParameters
	}
	code := entity.NormalizeCode(in.Code)
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateCodeError{Code: code}
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Code:        code,
		Price:       *in.Price,
		Stock:       0,
		MinStock:    entity.DefaultMinStock,
		Unit:        entity.UnitUnidad,
		Supplier:    strings.TrimSpace(in.Supplier),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	product.Category, _ = entity.ParseCategory(in.Category)
	if in.Unit != "" {
		product.Unit = entity.Unit(in.Unit)
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.DuplicateCodeError{Code: code}
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, incluidos los desactivados.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos ordenados por nombre aplicando los filtros presentes.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) ([]dto.ProductResponse, error) {
	filter := repository.ProductFilter{
		Search: strings.TrimSpace(q.Search),
		Active: q.Active,
	}
	if c := strings.TrimSpace(q.Category); c != "" {
		// Filtro exacto: "químicos" no coincide con "Químicos".
		cat := entity.Category(c)
		filter.Category = &cat
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStock productos activos con stock <= su propio stock mínimo, por stock ascendente.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica la política de campos según el rol:
//   - administrador: actualización parcial de cualquier campo.
//   - bodeguero: solo stock (valor absoluto); el resto del payload se ignora.
//   - cualquier otro rol: *domain.ForbiddenError.
func (uc *ProductUseCase) Update(ctx context.Context, id auth.Identity, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	switch id.Role {
	case entity.RoleAdministrador:
		return uc.updateAll(ctx, productID, in)
	case entity.RoleBodeguero:
		return uc.updateStock(ctx, productID, in.Stock)
	default: // vendedor
		return nil, updateForbidden(id.Role)
	}
}

func updateForbidden(actual entity.Role) error {
	return &domain.ForbiddenError{
		Required: []string{entity.RoleAdministrador.String(), entity.RoleBodeguero.String()},
		Actual:   actual.String(),
	}
}

func (uc *ProductUseCase) updateAll(ctx context.Context, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(repo repository.ProductRepository) error {
		product, err := repo.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
		}
		if in.Description != nil {
			product.Description = strings.TrimSpace(*in.Description)
		}
		if in.Code != nil {
			code := entity.NormalizeCode(*in.Code)
			if code != product.Code {
				other, err := repo.GetByCode(ctx, code)
				if err != nil {
					return err
				}
				if other != nil && other.ID != product.ID {
					return &domain.DuplicateCodeError{Code: code}
				}
			}
			product.Code = code
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
		}
		if in.MinStock != nil {
			product.MinStock = *in.MinStock
		}
		if in.Category != nil {
			product.Category, _ = entity.ParseCategory(*in.Category)
		}
		if in.Unit != nil {
			product.Unit = entity.Unit(*in.Unit)
		}
		if in.Supplier != nil {
			product.Supplier = strings.TrimSpace(*in.Supplier)
		}
		if in.Active != nil {
			product.Active = *in.Active
		}
		if err := product.Validate(); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()

		if err := repo.Update(ctx, product); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return &domain.DuplicateCodeError{Code: product.Code}
			}
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

func (uc *ProductUseCase) updateStock(ctx context.Context, productID string, stock *int) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if stock == nil {
		return nil, domain.ErrMissingParameters
	}
	if *stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	if *stock > entity.MaxStock {
		return nil, &domain.ValidationError{Field: "stock", Reason: "el stock excede el máximo permitido"}
	}
	product, err := uc.repo.SetStock(ctx, productID, *stock, time.Now())
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// AdjustStock suma o resta quantity al stock actual de forma atómica.
// Un descuento mayor que el stock devuelve *domain.InsufficientStockError y no escribe.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, productID string, in dto.StockAdjustRequest) (*dto.ProductResponse, entity.StockOperation, error) {
	if in.Quantity == nil || *in.Quantity == 0 || in.Op == "" {
		return nil, "", domain.ErrMissingParameters
	}
	if *in.Quantity < 0 {
		return nil, "", &domain.ValidationError{Field: "quantity", Reason: "la cantidad debe ser un número positivo"}
	}
	if *in.Quantity > entity.MaxStock {
		return nil, "", &domain.ValidationError{Field: "quantity", Reason: "la cantidad excede el máximo permitido"}
	}
	op, err := entity.ParseStockOperation(in.Op)
	if err != nil {
		return nil, "", err
	}

	delta := *in.Quantity
	if op == entity.OpDecrease {
		delta = -delta
	}
	product, err := uc.repo.ApplyStockDelta(ctx, productID, delta, time.Now())
	if err != nil {
		return nil, op, err
	}
	if product == nil {
		return nil, op, domain.ErrNotFound
	}
	return toProductResponse(product), op, nil
}

// Delete desactiva el producto (borrado lógico). Sigue consultable por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, productID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.SetActive(ctx, productID, false, time.Now())
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Code:        p.Code,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Category:    string(p.Category),
		Unit:        string(p.Unit),
		Supplier:    p.Supplier,
		Active:      p.Active,
		LowStock:    p.IsLowStock(),
		OutOfStock:  p.IsOutOfStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponse expone el mapeo para otros casos de uso (inventario).
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return *toProductResponse(p)
}
