package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// EnrollmentRepository puerto de matrícula. Las reglas (cupo, choque de horario,
// ventana abierta) las aplica sp_enroll y llegan como errores de dominio.
type EnrollmentRepository interface {
	ListByStudent(ctx context.Context, department, studentID, semester string) ([]entity.Enrollment, error)
	Enroll(ctx context.Context, department, studentID, sectionID string) (*entity.Enrollment, error)
	Cancel(ctx context.Context, department, studentID, sectionID string) error
}
