package dto

// ErrorResponse cuerpo de error HTTP. Details lleva contexto legible por máquina
// (roles requeridos, stock actual vs solicitado); nunca estado interno.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ForbiddenDetails contexto de un 403.
type ForbiddenDetails struct {
	RequiredRoles []string `json:"required_roles"`
	ActualRole    string   `json:"actual_role"`
}

// InsufficientStockDetails contexto de un descuento rechazado.
type InsufficientStockDetails struct {
	CurrentStock      int `json:"current_stock"`
	RequestedQuantity int `json:"requested_quantity"`
}

// FieldErrors errores de validación por campo.
type FieldErrors map[string]string
