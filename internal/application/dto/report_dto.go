package dto

import "github.com/shopspring/decimal"

// DepartmentSummaryResponse totales del departamento.
type DepartmentSummaryResponse struct {
	Semester       string          `json:"semester"`
	Students       int             `json:"students"`
	ActiveStudents int             `json:"active_students"`
	Sections       int             `json:"sections"`
	Enrollments    int             `json:"enrollments"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Outstanding    decimal.Decimal `json:"outstanding"`
}

// CourseStatResponse rendimiento de una sección.
type CourseStatResponse struct {
	SectionID    string           `json:"section_id"`
	CourseCode   string           `json:"course_code"`
	CourseName   string           `json:"course_name"`
	LecturerName string           `json:"lecturer_name"`
	Enrolled     int              `json:"enrolled"`
	Graded       int              `json:"graded"`
	Average      *decimal.Decimal `json:"average"`
	PassRate     *decimal.Decimal `json:"pass_rate"`
}

// DebtorResponse estudiante con saldo.
type DebtorResponse struct {
	StudentID  string          `json:"student_id"`
	FullName   string          `json:"full_name"`
	ClassName  string          `json:"class_name"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Balance    decimal.Decimal `json:"balance"`
}

// DebtorsResponse listado de deudores con el total adeudado.
type DebtorsResponse struct {
	Semester         string           `json:"semester"`
	Count            int              `json:"count"`
	TotalOutstanding decimal.Decimal  `json:"total_outstanding"`
	Items            []DebtorResponse `json:"items"`
}
