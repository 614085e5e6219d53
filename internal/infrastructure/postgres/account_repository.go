package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre los procedimientos de cada departamento.
type AccountRepo struct {
	conn departmentConn
}

// NewAccountRepository construye el adaptador de cuentas.
func NewAccountRepository(registry *Registry) *AccountRepo {
	return &AccountRepo{conn: registry}
}

// FindByUsername llama sp_login en el servidor del departamento.
func (r *AccountRepo) FindByUsername(ctx context.Context, department, username string) (*entity.Account, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, username, password_hash, full_name, role, is_student, active
		FROM sp_login($1)`
	var a entity.Account
	err = db.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.FullName, &a.Role, &a.IsStudent, &a.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sp_login: %w", mapDBError(err))
	}
	return &a, nil
}

// ChangePassword guarda el nuevo hash bcrypt.
func (r *AccountRepo) ChangePassword(ctx context.Context, department, accountID, passwordHash string) error {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, `SELECT sp_change_password($1, $2)`, accountID, passwordHash); err != nil {
		return fmt.Errorf("sp_change_password: %w", mapDBError(err))
	}
	return nil
}
