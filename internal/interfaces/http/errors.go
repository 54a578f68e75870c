package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	appinventory "github.com/jhoicas/quimicos-inventario/internal/application/inventory"
	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION"
	CodeMissingParameters  = "MISSING_PARAMETERS"
	CodeInvalidStock       = "INVALID_STOCK"
	CodeInvalidOperation   = "INVALID_OPERATION"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeDuplicateCode      = "DUPLICATE_CODE"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidBody        = "INVALID_BODY"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeUnavailable        = "UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)

const internalMessage = "Error interno del servidor"

// errorStatus traduce un error de dominio a status HTTP + cuerpo.
// Errores desconocidos → 500 con mensaje genérico; el detalle solo va al log.
func errorStatus(err error) (int, dto.ErrorResponse) {
	var (
		forbidden    *domain.ForbiddenError
		insufficient *domain.InsufficientStockError
		duplicate    *domain.DuplicateCodeError
		validation   *domain.ValidationError
		fiberErr     *fiber.Error
	)
	switch {
	case errors.As(err, &forbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{
			Code:    CodeForbidden,
			Message: "Acceso denegado. No tiene permisos para realizar esta acción.",
			Details: dto.ForbiddenDetails{RequiredRoles: forbidden.Required, ActualRole: forbidden.Actual},
		}
	case errors.As(err, &insufficient):
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    CodeInsufficientStock,
			Message: "Stock insuficiente para realizar la operación",
			Details: dto.InsufficientStockDetails{CurrentStock: insufficient.Current, RequestedQuantity: insufficient.Requested},
		}
	case errors.As(err, &duplicate):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeDuplicateCode, Message: "Ya existe un producto con ese código"}
	case errors.As(err, &validation):
		resp := dto.ErrorResponse{Code: CodeValidation, Message: validation.Reason}
		if validation.Field != "" {
			resp.Details = dto.FieldErrors{validation.Field: validation.Reason}
		}
		return fiber.StatusBadRequest, resp
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		msg := "Producto no encontrado"
		if errors.Is(err, domain.ErrUserNotFound) {
			msg = "Usuario no encontrado"
		}
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: msg}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeEmailExists, Message: "El email ya está registrado."}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeInvalidCredentials, Message: "Credenciales inválidas."}
	case errors.Is(err, domain.ErrMissingParameters):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeMissingParameters, Message: "Faltan parámetros requeridos"}
	case errors.Is(err, domain.ErrInvalidStock):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeInvalidStock, Message: "El stock no puede ser negativo"}
	case errors.Is(err, domain.ErrInvalidOperation):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeInvalidOperation, Message: `Operación inválida. Use "sumar" o "restar"`}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeDuplicateCode, Message: "Ya existe un producto con ese código"}
	case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeInvalidToken, Message: "Token inválido o expirado."}
	case errors.Is(err, appinventory.ErrReportUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: CodeUnavailable, Message: "Reporte no disponible"}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, dto.ErrorResponse{Code: fiberCode(fiberErr.Code), Message: fiberErr.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: internalMessage}
	}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusTooManyRequests:
		return CodeTooManyRequests
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return CodeInvalidBody
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		if status >= 500 {
			return CodeInternal
		}
		return "HTTP_ERROR"
	}
}

// respondError escribe la respuesta de error y registra los 5xx con el request id.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, body := errorStatus(err)
	if status >= fiber.StatusInternalServerError && log != nil {
		log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler handler global de Fiber: cualquier error no manejado sale con el mismo sobre JSON.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return respondError(c, log, err)
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}
