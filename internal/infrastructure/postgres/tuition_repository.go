package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.TuitionRepository = (*TuitionRepo)(nil)

// TuitionRepo estado de cuenta y pagos de matrícula.
type TuitionRepo struct {
	conn departmentConn
}

// NewTuitionRepository construye el adaptador.
func NewTuitionRepository(registry *Registry) *TuitionRepo {
	return &TuitionRepo{conn: registry}
}

// Statement llama sp_get_tuition. Devuelve (nil, nil) si no hay fila.
func (r *TuitionRepo) Statement(ctx context.Context, department, studentID, semester string) (*entity.TuitionStatement, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT student_id, semester, credits, credit_fee, amount_due, amount_paid
		FROM sp_get_tuition($1, $2)`
	var s entity.TuitionStatement
	err = db.QueryRow(ctx, query, studentID, semester).Scan(
		&s.StudentID, &s.Semester, &s.Credits, &s.CreditFee, &s.AmountDue, &s.AmountPaid,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sp_get_tuition: %w", mapDBError(err))
	}
	return &s, nil
}

// Pay llama sp_pay_tuition. El ID del pago lo genera la aplicación.
func (r *TuitionRepo) Pay(ctx context.Context, department string, p entity.Payment) (*entity.PaymentReceipt, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT payment_id, paid_at, balance
		FROM sp_pay_tuition($1, $2, $3, $4, $5, $6)`
	rec := entity.PaymentReceipt{Payment: p}
	err = db.QueryRow(ctx, query,
		p.ID, p.StudentID, p.Semester, p.Amount, p.Reference, nullIfEmpty(p.CashierID),
	).Scan(&rec.ID, &rec.PaidAt, &rec.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sp_pay_tuition: %w", mapDBError(err))
	}
	return &rec, nil
}

// ListPayments llama sp_list_payments; studentID vacío lista todos los pagos del departamento.
func (r *TuitionRepo) ListPayments(ctx context.Context, department, studentID string) ([]entity.Payment, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT payment_id, student_id, semester, amount, reference, COALESCE(cashier_id, ''), paid_at
		FROM sp_list_payments($1)`
	rows, err := db.Query(ctx, query, nullIfEmpty(studentID))
	if err != nil {
		return nil, fmt.Errorf("sp_list_payments: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Semester, &p.Amount, &p.Reference, &p.CashierID, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
