package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// ReportRepository puerto de los procedimientos de reportes del departamento.
type ReportRepository interface {
	Summary(ctx context.Context, department, semester string) (*entity.DepartmentSummary, error)
	CourseStats(ctx context.Context, department, semester string) ([]entity.CourseStat, error)
	Debtors(ctx context.Context, department, semester string) ([]entity.Debtor, error)
}
