package repository

import (
	"context"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// TuitionRepository puerto de matrícula financiera.
type TuitionRepository interface {
	// Statement devuelve (nil, nil) si el estudiante no existe.
	Statement(ctx context.Context, department, studentID, semester string) (*entity.TuitionStatement, error)
	Pay(ctx context.Context, department string, p entity.Payment) (*entity.PaymentReceipt, error)
	ListPayments(ctx context.Context, department, studentID string) ([]entity.Payment, error)
}
