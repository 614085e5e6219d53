package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// CourseRepository puerto de secciones y listas de clase.
type CourseRepository interface {
	ListSections(ctx context.Context, department string, f entity.SectionFilter) ([]entity.CourseSection, error)
	// GetSection devuelve (nil, nil) si no existe.
	GetSection(ctx context.Context, department, sectionID string) (*entity.CourseSection, error)
	Roster(ctx context.Context, department, sectionID string) ([]entity.RosterEntry, error)
}
