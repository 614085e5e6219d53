package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// DepartmentDirectory resuelve departamentos contra v_department_directory (DIP).
type DepartmentDirectory interface {
	Departments(ctx context.Context) ([]entity.Department, error)
	// Resolve devuelve domain.ErrDepartmentNotFound si el nombre no existe.
	Resolve(ctx context.Context, name string) (entity.Department, error)
}
