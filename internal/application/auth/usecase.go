package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/jhoicas/creditmemo-api/internal/application/dto"
	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin único rol del API de notas de crédito (panel de administración).
const RoleAdmin = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredentials usuario administrador configurado. PasswordHash es un hash bcrypt.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AuthUseCase emite tokens para el usuario administrador.
type AuthUseCase struct {
	admin  AdminCredentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(admin AdminCredentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// IssueToken verifica usuario/password (bcrypt) y genera el JWT.
func (uc *AuthUseCase) IssueToken(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if uc.admin.Username == "" || uc.admin.PasswordHash == "" {
		return nil, domain.ErrUnauthorized // sin administrador configurado
	}
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.admin.Username)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
