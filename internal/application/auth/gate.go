package auth

import (
	"strings"

	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/pkg/jwt"
)

// Identity sujeto autenticado tal como viene en el token.
type Identity struct {
	UserID string
	Role   entity.Role
}

// Gate control de acceso en dos etapas: Authenticate (token → identidad) y luego Authorize (rol).
// No hace I/O: solo verifica y decodifica el token firmado.
type Gate struct {
	secret string
}

// NewGate construye el gate con el secreto HMAC de los tokens.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authenticate valida el token y devuelve la identidad. Token vacío, malformado, expirado,
// con firma incorrecta o con un rol desconocido → domain.ErrUnauthorized.
func (g *Gate) Authenticate(rawToken string) (Identity, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return Identity{}, domain.ErrUnauthorized
	}
	userID, role, err := jwt.Parse(g.secret, rawToken)
	if err != nil || userID == "" {
		return Identity{}, domain.ErrUnauthorized
	}
	r := entity.Role(role)
	if !r.Valid() {
		return Identity{}, domain.ErrUnauthorized
	}
	return Identity{UserID: userID, Role: r}, nil
}

// Authorize verifica que el rol de id esté entre required.
// Devuelve *domain.ForbiddenError con los roles requeridos y el actual.
func (g *Gate) Authorize(id Identity, required ...entity.Role) error {
	for _, r := range required {
		if id.Role == r {
			return nil
		}
	}
	names := make([]string, 0, len(required))
	for _, r := range required {
		names = append(names, r.String())
	}
	return &domain.ForbiddenError{Required: names, Actual: id.Role.String()}
}
