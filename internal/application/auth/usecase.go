package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/access"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
	"github.com/jhoicas/Academico-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login contra el departamento y cambio de contraseña.
type AuthUseCase struct {
	directory repository.DepartmentDirectory
	accounts  repository.AccountRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(directory repository.DepartmentDirectory, accounts repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{directory: directory, accounts: accounts, jwtCfg: jwtCfg}
}

// Login resuelve el departamento, busca la cuenta con sp_login y verifica la contraseña.
// Devuelve ErrUserNotFound / ErrUnauthorized si las credenciales no cuadran e
// ErrInactiveAccount si la cuenta está desactivada.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	dept, err := uc.directory.Resolve(ctx, in.Department)
	if err != nil {
		return nil, err
	}
	acct, err := uc.accounts.FindByUsername(ctx, dept.BranchName, in.Username)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !acct.Active {
		return nil, domain.ErrInactiveAccount
	}
	if !access.IsValidRole(acct.Role) {
		return nil, fmt.Errorf("%w: rol %q sin permisos definidos", domain.ErrForbidden, acct.Role)
	}

	id := jwt.Identity{
		UserID:     acct.ID,
		Username:   acct.Username,
		Role:       acct.Role,
		Department: dept.BranchName,
		IsStudent:  acct.IsStudent,
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, id)
	if err != nil {
		return nil, err
	}
	session := SessionFromIdentity(id)
	session.FullName = acct.FullName
	return &dto.LoginResponse{
		Token:    token,
		Session:  session,
		Pages:    access.Pages(acct.Role),
		HomePage: access.HomePage(acct.Role),
	}, nil
}

// ChangePassword verifica la contraseña actual y guarda el nuevo hash.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, id jwt.Identity, in dto.ChangePasswordRequest) error {
	acct, err := uc.accounts.FindByUsername(ctx, id.Department, id.Username)
	if err != nil {
		return err
	}
	if acct == nil || acct.ID != id.UserID {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.accounts.ChangePassword(ctx, id.Department, acct.ID, string(hash))
}

// SessionFromIdentity reconstruye la sesión a partir de los claims del token.
func SessionFromIdentity(id jwt.Identity) dto.SessionResponse {
	return dto.SessionResponse{
		ID:         id.UserID,
		Username:   id.Username,
		Role:       id.Role,
		Department: id.Department,
		IsStudent:  id.IsStudent,
	}
}
