package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
	"github.com/acardona/stock-api/internal/domain/validation"
	"github.com/acardona/stock-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret       string
	ExpMinutes   int
	RefreshHours int
	Issuer       string
}

// AuthUseCase casos de uso de autenticación: registro de administradores,
// login (par access/refresh), refresh y verify.
type AuthUseCase struct {
	adminRepo repository.AdministradorRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdministradorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Registrar crea un administrador: valida username y política de contraseña,
// hashea con bcrypt y persiste. Devuelve ErrUsernameExists si ya está tomado.
func (uc *AuthUseCase) Registrar(in dto.RegistrarAdminRequest) (*dto.AdminResponse, error) {
	if err := validation.ValidarUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidarPassword(in.Password); err != nil {
		return nil, err
	}
	existing, err := uc.adminRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &entity.Administrador{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		IsStaff:      in.IsStaff || in.Superuser,
		IsSuperuser:  in.Superuser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// Login verifica username/password y emite el par access + refresh.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !admin.IsActive {
		return nil, domain.ErrForbidden
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.IsSuperuser, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, admin.ID, admin.IsSuperuser, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Access: access, Refresh: refresh}, nil
}

// Refresh valida el refresh token y emite un nuevo access token. Revalida
// que la cuenta siga activa antes de rotar.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := jwt.ParseRefresh(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	admin, err := uc.adminRepo.GetByID(claims.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.IsSuperuser, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Access: access}, nil
}

// Verify comprueba firma y expiración de un token (access o refresh).
func (uc *AuthUseCase) Verify(token string) error {
	if _, err := jwt.Parse(uc.jwtCfg.Secret, token); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func toAdminResponse(a *entity.Administrador) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		ID:          a.ID,
		Username:    a.Username,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
