package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// maxPayment tope de un pago individual.
var maxPayment = decimal.NewFromInt(1_000_000_000)

// TuitionUseCase estado de cuenta y pagos de matrícula.
type TuitionUseCase struct {
	repo            repository.TuitionRepository
	currentSemester string
}

// NewTuitionUseCase construye el caso de uso.
func NewTuitionUseCase(repo repository.TuitionRepository, currentSemester string) *TuitionUseCase {
	return &TuitionUseCase{repo: repo, currentSemester: currentSemester}
}

// Statement estado de cuenta del semestre (en curso si viene vacío).
func (uc *TuitionUseCase) Statement(ctx context.Context, department, studentID, semester string) (*dto.TuitionResponse, error) {
	semester, err := resolveSemester(semester, uc.currentSemester)
	if err != nil {
		return nil, err
	}
	s, err := uc.repo.Statement(ctx, department, studentID, semester)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TuitionResponse{
		StudentID:  s.StudentID,
		Semester:   s.Semester,
		Credits:    s.Credits,
		CreditFee:  s.CreditFee,
		AmountDue:  s.AmountDue,
		AmountPaid: s.AmountPaid,
		Balance:    s.Balance(),
	}, nil
}

// Pay registra un pago. El monto debe ser positivo con dos decimales como máximo;
// sp_pay_tuition rechaza pagos mayores al saldo.
func (uc *TuitionUseCase) Pay(ctx context.Context, department, cashierID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	semester, err := resolveSemester(in.Semester, uc.currentSemester)
	if err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() || in.Amount.GreaterThan(maxPayment) {
		return nil, fmt.Errorf("%w: amount debe ser mayor que cero y no superar %s", domain.ErrInvalidInput, maxPayment)
	}
	if !in.Amount.Equal(in.Amount.Round(2)) {
		return nil, fmt.Errorf("%w: amount admite dos decimales", domain.ErrInvalidInput)
	}
	id := uuid.New()
	rec, err := uc.repo.Pay(ctx, department, entity.Payment{
		ID:        id.String(),
		StudentID: strings.TrimSpace(in.StudentID),
		Semester:  semester,
		Amount:    in.Amount,
		Reference: paymentReference(id),
		CashierID: cashierID,
	})
	if err != nil {
		return nil, err
	}
	out := toPaymentResponse(&rec.Payment)
	balance := rec.Balance
	out.Balance = &balance
	return &out, nil
}

// ListPayments pagos registrados; studentID vacío lista todo el departamento.
func (uc *TuitionUseCase) ListPayments(ctx context.Context, department, studentID string) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListPayments(ctx, department, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, toPaymentResponse(&list[i]))
	}
	return out, nil
}

// paymentReference referencia impresa en el recibo: REC- más los primeros 12 dígitos hex del UUID.
func paymentReference(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "REC-" + strings.ToUpper(hex[:12])
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		StudentID: p.StudentID,
		Semester:  p.Semester,
		Amount:    p.Amount,
		Reference: p.Reference,
		CashierID: p.CashierID,
		PaidAt:    p.PaidAt,
	}
}
