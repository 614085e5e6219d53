package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grade calificación de un estudiante en una sección.
type Grade struct {
	SectionID string
	StudentID string
	Midterm   decimal.Decimal
	Final     decimal.Decimal
	Total     decimal.Decimal
	Letter    string
	Passed    bool
	GradedBy  string
	UpdatedAt time.Time
}

// RosterEntry estudiante de la lista de clase con su nota (si ya fue calificado).
type RosterEntry struct {
	StudentID string
	FullName  string
	ClassName string
	Midterm   decimal.NullDecimal
	Final     decimal.NullDecimal
	Total     decimal.NullDecimal
	Letter    string
}

// TranscriptLine una asignatura cursada en el historial académico.
type TranscriptLine struct {
	Semester   string
	CourseCode string
	CourseName string
	Credits    int
	Midterm    decimal.Decimal
	Final      decimal.Decimal
	Total      decimal.Decimal
	Letter     string
	Passed     bool
}
