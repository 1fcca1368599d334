package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes límite de entrada de bcrypt.
const maxPasswordBytes = 72

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithBcryptCost cambia el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register crea un usuario con el rol por defecto.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserProfile, error) {
	return uc.CreateUser(ctx, in, entity.RoleDefault)
}

// CreateUser crea un usuario con un rol explícito. Solo lo usa el seed;
// la API pública siempre registra con entity.RoleDefault.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.RegisterRequest, rol string) (*dto.UserProfile, error) {
	if !entity.IsValidRole(rol) {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, rol)
	}
	// validator cuenta runas; bcrypt limita en bytes.
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password no puede superar %d bytes", domain.ErrInvalidInput, maxPasswordBytes)
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}
	user := &entity.User{
		NombreUsuario: strings.TrimSpace(in.NombreUsuario),
		Email:         email,
		PasswordHash:  string(hash),
		Rol:           rol,
		FechaCreacion: time.Now().UTC(),
	}
	// La constraint UNIQUE cubre la carrera entre FindByEmail y Create.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserProfile(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:        user.ID,
		NombreUsuario: user.NombreUsuario,
		Rol:           user.Rol,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUserProfile(user),
	}, nil
}

// GetCurrentUser devuelve el perfil del usuario identificado por el token.
func (uc *AuthUseCase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserProfile(user), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toUserProfile(u *entity.User) *dto.UserProfile {
	if u == nil {
		return nil
	}
	return &dto.UserProfile{
		ID:            u.ID,
		NombreUsuario: u.NombreUsuario,
		Email:         u.Email,
		Rol:           u.Rol,
	}
}
