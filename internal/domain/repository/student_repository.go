package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// StudentRepository puerto de fichas de estudiantes.
type StudentRepository interface {
	List(ctx context.Context, department string, f entity.StudentFilter) ([]entity.Student, int, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, department, id string) (*entity.Student, error)
	// Create crea la ficha y su cuenta de acceso en una sola llamada.
	Create(ctx context.Context, department string, s *entity.Student, username, passwordHash string) error
	Update(ctx context.Context, department string, s *entity.Student) error
}
