package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Name, Code y Price son obligatorios.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description"`
	Code        string           `json:"code" validate:"required,max=50"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"omitempty,max=2147483647"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,min=0,max=2147483647"`
	Category    string           `json:"category"`
	Unit        string           `json:"unit"`
	Supplier    string           `json:"supplier" validate:"max=200"`
}

// UpdateProductRequest actualización parcial: campo nil = sin cambios.
// El bodeguero solo puede enviar Stock; el resto se ignora para ese rol.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=200"`
	Description *string          `json:"description"`
	Code        *string          `json:"code" validate:"omitempty,max=50"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,max=2147483647"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,max=2147483647"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	Supplier    *string          `json:"supplier" validate:"omitempty,max=200"`
	Active      *bool            `json:"active"`
}

// StockUpdateRequest cuerpo de PUT /products/:id para el bodeguero: solo stock.
type StockUpdateRequest struct {
	Stock *int `json:"stock" validate:"omitempty,max=2147483647"`
}

// StockAdjustRequest ajuste relativo de stock: op "sumar" | "restar".
type StockAdjustRequest struct {
	Quantity *int   `json:"quantity" validate:"omitempty,max=2147483647"`
	Op       string `json:"op"`
}

// ProductQuery filtros de GET /products.
type ProductQuery struct {
	Category string
	Search   string
	Active   *bool
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Code        string          `json:"code"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Supplier    string          `json:"supplier"`
	Active      bool            `json:"active"`
	LowStock    bool            `json:"low_stock"`
	OutOfStock  bool            `json:"out_of_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductEnvelope respuesta de operaciones sobre un producto.
type ProductEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Product ProductResponse `json:"product"`
}

// ProductListResponse listado con cantidad.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}
