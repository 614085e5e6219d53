package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TuitionStatement estado de cuenta de matrícula de un estudiante en un semestre.
type TuitionStatement struct {
	StudentID  string
	Semester   string
	Credits    int
	CreditFee  decimal.Decimal
	AmountDue  decimal.Decimal
	AmountPaid decimal.Decimal
}

// Balance saldo pendiente (nunca negativo).
func (s TuitionStatement) Balance() decimal.Decimal {
	b := s.AmountDue.Sub(s.AmountPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// Payment pago de matrícula registrado por tesorería.
type Payment struct {
	ID        string
	StudentID string
	Semester  string
	Amount    decimal.Decimal
	Reference string
	CashierID string
	PaidAt    time.Time
}

// PaymentReceipt resultado de sp_pay_tuition.
type PaymentReceipt struct {
	Payment
	Balance decimal.Decimal
}
