package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TuitionResponse estado de cuenta del semestre.
type TuitionResponse struct {
	StudentID  string          `json:"student_id"`
	Semester   string          `json:"semester"`
	Credits    int             `json:"credits"`
	CreditFee  decimal.Decimal `json:"credit_fee"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Balance    decimal.Decimal `json:"balance"`
}

// PaymentRequest pago registrado por tesorería. Semester vacío: semestre en curso.
type PaymentRequest struct {
	StudentID string          `json:"student_id" validate:"required,max=20"`
	Semester  string          `json:"semester" validate:"omitempty,max=10"`
	Amount    decimal.Decimal `json:"amount"`
}

// PaymentResponse pago con el saldo resultante.
type PaymentResponse struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	Semester  string           `json:"semester"`
	Amount    decimal.Decimal  `json:"amount"`
	Reference string           `json:"reference"`
	CashierID string           `json:"cashier_id,omitempty"`
	PaidAt    time.Time        `json:"paid_at"`
	Balance   *decimal.Decimal `json:"balance,omitempty"`
}
