package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GradeEntryRequest nota de un estudiante. Escala 0-10 con un decimal.
type GradeEntryRequest struct {
	StudentID string          `json:"student_id" validate:"required,max=20"`
	Midterm   decimal.Decimal `json:"midterm" validate:"required"`
	Final     decimal.Decimal `json:"final" validate:"required"`
}

// GradeBatchRequest notas de una sección; se graban todas o ninguna.
type GradeBatchRequest struct {
	Entries []GradeEntryRequest `json:"entries" validate:"required,min=1,max=500,dive"`
}

// GradeResponse nota registrada.
type GradeResponse struct {
	SectionID string          `json:"section_id"`
	StudentID string          `json:"student_id"`
	Midterm   decimal.Decimal `json:"midterm"`
	Final     decimal.Decimal `json:"final"`
	Total     decimal.Decimal `json:"total"`
	Letter    string          `json:"letter"`
	Passed    bool            `json:"passed"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GradeBatchResponse resultado de la carga de notas.
type GradeBatchResponse struct {
	SectionID string          `json:"section_id"`
	Saved     int             `json:"saved"`
	Grades    []GradeResponse `json:"grades"`
}

// TranscriptLineResponse asignatura del historial.
type TranscriptLineResponse struct {
	Semester   string          `json:"semester"`
	CourseCode string          `json:"course_code"`
	CourseName string          `json:"course_name"`
	Credits    int             `json:"credits"`
	Midterm    decimal.Decimal `json:"midterm"`
	Final      decimal.Decimal `json:"final"`
	Total      decimal.Decimal `json:"total"`
	Letter     string          `json:"letter"`
	Passed     bool            `json:"passed"`
}

// TranscriptResponse historial de notas con promedio ponderado.
type TranscriptResponse struct {
	StudentID        string                   `json:"student_id"`
	Lines            []TranscriptLineResponse `json:"lines"`
	GPA              decimal.Decimal          `json:"gpa"`
	CreditsAttempted int                      `json:"credits_attempted"`
	CreditsEarned    int                      `json:"credits_earned"`
}
