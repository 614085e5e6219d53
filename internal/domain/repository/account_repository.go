package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// AccountRepository puerto de cuentas de acceso; cada llamada se enruta al departamento indicado.
type AccountRepository interface {
	// FindByUsername devuelve (nil, nil) si sp_login no encuentra la cuenta.
	FindByUsername(ctx context.Context, department, username string) (*entity.Account, error)
	ChangePassword(ctx context.Context, department, accountID, passwordHash string) error
}
