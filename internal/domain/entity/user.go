package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/quimicos-inventario/internal/domain"
)

// Role es el rol del usuario. Conjunto cerrado: solo las constantes de abajo son válidas.
type Role string

// Roles válidos para User.
const (
	RoleVendedor      Role = "vendedor"
	RoleBodeguero     Role = "bodeguero"
	RoleAdministrador Role = "administrador"
)

// ParseRole convierte un string al rol correspondiente. Vacío equivale a vendedor (rol por defecto).
// Distingue mayúsculas: "Administrador" no es un rol válido.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case "":
		return RoleVendedor, nil
	case RoleVendedor, RoleBodeguero, RoleAdministrador:
		return r, nil
	default:
		return "", domain.ErrInvalidRole
	}
}

// Valid indica si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleVendedor, RoleBodeguero, RoleAdministrador:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string // siempre en minúsculas
	PasswordHash string // bcrypt hash, nunca plano
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail recorta espacios y pasa el email a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
