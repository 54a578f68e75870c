package entity

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unit unidad de medida.
type Unit string

const (
	UnitKg     Unit = "Kg"
	UnitL      Unit = "L"
	UnitUnidad Unit = "Unidad"
	UnitGalon  Unit = "Galón"
	UnitLibra  Unit = "Libra"
	UnitMetro  Unit = "Metro"
	UnitCaja   Unit = "Caja"
	UnitOtro   Unit = "Otro"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitL, UnitUnidad, UnitGalon, UnitLibra, UnitMetro, UnitCaja, UnitOtro:
		return true
	default:
		return false
	}
}

// DefaultMinStock umbral de reorden cuando no se indica uno.
const DefaultMinStock = 10

// Límites de almacenamiento (columnas de products).
const (
	MaxStock          = math.MaxInt32
	MaxNameLength     = 200
	MaxCodeLength     = 50
	MaxSupplierLength = 200
)

// MaxPrice cota exclusiva de NUMERIC(14,2).
var MaxPrice = decimal.New(1, 12)

// Product representa un producto del catálogo.
// Active=false es el borrado lógico: el producto sigue siendo consultable por ID.
type Product struct {
	ID          string
	Name        string
	Description string
	Code        string // único, siempre en mayúsculas
	Price       decimal.Decimal
	Stock       int
	MinStock    int
	Category    Category
	Unit        Unit
	Supplier    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeCode recorta espacios y pasa el código a mayúsculas ("qui-001" → "QUI-001").
func NormalizeCode(code string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}

// IsLowStock stock <= stock mínimo.
func (p *Product) IsLowStock() bool { return p.Stock <= p.MinStock }

// IsOutOfStock stock == 0.
func (p *Product) IsOutOfStock() bool { return p.Stock == 0 }

// InventoryValue precio × stock.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// Validate verifica las invariantes del producto.
func (p *Product) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return &domain.ValidationError{Field: "name", Reason: "el nombre del producto es requerido"}
	case utf8.RuneCountInString(p.Name) > MaxNameLength:
		return &domain.ValidationError{Field: "name", Reason: "el nombre no puede superar 200 caracteres"}
	case p.Code == "":
		return &domain.ValidationError{Field: "code", Reason: "el código del producto es requerido"}
	case utf8.RuneCountInString(p.Code) > MaxCodeLength:
		return &domain.ValidationError{Field: "code", Reason: "el código no puede superar 50 caracteres"}
	case utf8.RuneCountInString(p.Supplier) > MaxSupplierLength:
		return &domain.ValidationError{Field: "supplier", Reason: "el proveedor no puede superar 200 caracteres"}
	case p.Price.IsNegative():
		return &domain.ValidationError{Field: "price", Reason: "el precio no puede ser negativo"}
	case p.Price.GreaterThanOrEqual(MaxPrice):
		return &domain.ValidationError{Field: "price", Reason: "el precio excede el máximo permitido"}
	case p.Stock < 0:
		return domain.ErrInvalidStock
	case p.Stock > MaxStock:
		return &domain.ValidationError{Field: "stock", Reason: "el stock excede el máximo permitido"}
	case p.MinStock < 0:
		return &domain.ValidationError{Field: "min_stock", Reason: "el stock mínimo no puede ser negativo"}
	case p.MinStock > MaxStock:
		return &domain.ValidationError{Field: "min_stock", Reason: "el stock mínimo excede el máximo permitido"}
	case !p.Category.Valid():
		return &domain.ValidationError{Field: "category", Reason: "categoría inválida"}
	case !p.Unit.Valid():
		return &domain.ValidationError{Field: "unit", Reason: "unidad de medida inválida"}
	}
	return nil
}
