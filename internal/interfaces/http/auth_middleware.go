package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/quimicos-inventario/internal/application/auth"
	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
)

// Locals key para la identidad autenticada en Fiber.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token y deja la identidad (usuario + rol) en c.Locals.
func AuthMiddleware(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeMissingToken, Message: "Acceso denegado. No se proporcionó token."})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeInvalidToken, Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeMissingToken, Message: "token vacío"})
		}
		id, err := gate.Authenticate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeInvalidToken, Message: "Token inválido o expirado."})
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Va después de AuthMiddleware.
func RequireRole(gate *auth.Gate, roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := GetIdentity(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeMissingToken, Message: "No autorizado. Debe iniciar sesión."})
		}
		if err := gate.Authorize(id, roles...); err != nil {
			status, body := errorStatus(err)
			return c.Status(status).JSON(body)
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(auth.Identity)
	return id, ok
}

// GetUserID devuelve el UserID del contexto o "".
func GetUserID(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.UserID
}

// GetRole devuelve el rol del contexto o "".
func GetRole(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.Role.String()
}
