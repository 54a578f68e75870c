package entity

import "github.com/jhoicas/quimicos-inventario/internal/domain"

// StockOperation operación relativa sobre el stock.
type StockOperation string

const (
	OpIncrease StockOperation = "sumar"
	OpDecrease StockOperation = "restar"
)

// ParseStockOperation valida la operación. Coincidencia exacta: "SUMAR" o " restar" son inválidas.
func ParseStockOperation(s string) (StockOperation, error) {
	switch op := StockOperation(s); op {
	case OpIncrease, OpDecrease:
		return op, nil
	default:
		return "", domain.ErrInvalidOperation
	}
}
