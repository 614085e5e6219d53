package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// GradeRepository puerto de calificaciones.
type GradeRepository interface {
	// Save registra la nota; lecturerID vacío omite la verificación de docente (admin).
	Save(ctx context.Context, department, lecturerID string, g *entity.Grade) error
	ListByStudent(ctx context.Context, department, studentID string) ([]entity.TranscriptLine, error)
}

// GradeTxRunner ejecuta fn dentro de una transacción del departamento con un
// GradeRepository atado a ella.
type GradeTxRunner interface {
	RunGrades(ctx context.Context, department string, fn func(repo GradeRepository) error) error
}
