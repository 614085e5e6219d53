package entity

import "github.com/shopspring/decimal"

// DepartmentSummary totales del departamento en un semestre.
type DepartmentSummary struct {
	Semester       string
	Students       int
	ActiveStudents int
	Sections       int
	Enrollments    int
	AmountDue      decimal.Decimal
	AmountPaid     decimal.Decimal
}

// CourseStat rendimiento de una sección.
type CourseStat struct {
	SectionID    string
	CourseCode   string
	CourseName   string
	LecturerName string
	Enrolled     int
	Graded       int
	Average      decimal.NullDecimal
	PassRate     decimal.NullDecimal // porcentaje 0-100
}

// Debtor estudiante con saldo pendiente.
type Debtor struct {
	StudentID  string
	FullName   string
	ClassName  string
	AmountDue  decimal.Decimal
	AmountPaid decimal.Decimal
	Balance    decimal.Decimal
}
