package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/repository"
	"github.com/jhoicas/quimicos-inventario/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Límites de las columnas de users y de bcrypt (72 bytes).
const (
	maxNameLength     = 150
	maxEmailLength    = 255
	maxPasswordLength = 72
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost permite bajar el costo de bcrypt (tests).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.bcryptCost = cost
	return uc
}

// Register crea un usuario (password con bcrypt), y devuelve token + resumen.
// ErrEmailAlreadyExists si el email ya está registrado (sin distinguir mayúsculas).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := entity.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingParameters
	}
	switch {
	case utf8.RuneCountInString(name) > maxNameLength:
		return nil, &domain.ValidationError{Field: "name", Reason: "el nombre no puede superar 150 caracteres"}
	case len(email) > maxEmailLength:
		return nil, &domain.ValidationError{Field: "email", Reason: "el email no puede superar 255 caracteres"}
	case len(in.Password) > maxPasswordLength:
		return nil, &domain.ValidationError{Field: "password", Reason: "la contraseña no puede superar 72 bytes"}
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, &domain.ValidationError{Field: "role", Reason: "rol inválido, use vendedor, bodeguero o administrador"}
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &domain.ValidationError{Field: "password", Reason: "la contraseña no puede superar 72 bytes"}
		}
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(user, "Usuario registrado exitosamente")
}

// Login verifica email/password y genera el token.
// Email desconocido y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := entity.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrMissingParameters
	}
	if len(in.Password) > maxPasswordLength {
		// Ningún hash almacenado puede corresponder a una contraseña así.
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return uc.issue(user, "Inicio de sesión exitoso")
}

// Me devuelve el resumen del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) issue(user *entity.User, message string) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: message,
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}
