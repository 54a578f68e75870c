package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrMissingParameters  = errors.New("faltan parámetros requeridos")
	ErrInvalidStock       = errors.New("el stock no puede ser negativo")
	ErrInvalidOperation   = errors.New(`operación inválida, use "sumar" o "restar"`)
	ErrInvalidRole        = errors.New("rol inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// ForbiddenError indica que la identidad es válida pero su rol no está entre los requeridos.
// Required y Actual son solo diagnóstico.
type ForbiddenError struct {
	Required []string
	Actual   string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("acceso denegado: rol %q, requerido uno de [%s]", e.Actual, strings.Join(e.Required, ", "))
}

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// InsufficientStockError se devuelve cuando un descuento supera el stock actual.
type InsufficientStockError struct {
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: actual %d, solicitado %d", e.Current, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// ValidationError describe un campo inválido.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// DuplicateCodeError colisión de código de producto (comparación sin mayúsculas/minúsculas).
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("ya existe un producto con el código %s", e.Code)
}

func (e *DuplicateCodeError) Is(target error) bool { return target == ErrDuplicate }
