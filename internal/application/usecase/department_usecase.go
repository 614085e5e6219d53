package usecase

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// DepartmentUseCase consulta el directorio de departamentos.
type DepartmentUseCase struct {
	directory repository.DepartmentDirectory
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(directory repository.DepartmentDirectory) *DepartmentUseCase {
	return &DepartmentUseCase{directory: directory}
}

// List devuelve los departamentos. withServer expone server_name (solo administradores).
func (uc *DepartmentUseCase) List(ctx context.Context, withServer bool) ([]dto.DepartmentResponse, error) {
	list, err := uc.directory.Departments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		r := dto.DepartmentResponse{BranchName: d.BranchName}
		if withServer {
			r.ServerName = d.ServerName
		}
		out = append(out, r)
	}
	return out, nil
}

// Resolve traduce el nombre al registro del directorio.
func (uc *DepartmentUseCase) Resolve(ctx context.Context, name string) (*dto.DepartmentResponse, error) {
	d, err := uc.directory.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.DepartmentResponse{BranchName: d.BranchName, ServerName: d.ServerName}, nil
}
