package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard. Según el rol se llena
// Student (estudiante) o Summary (personal del departamento).
type DashboardResponse struct {
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Semester   string   `json:"semester"`
	Pages      []string `json:"pages"`

	Student *StudentDashboard          `json:"student,omitempty"`
	Summary *DepartmentSummaryResponse `json:"summary,omitempty"`
}

// StudentDashboard widgets del estudiante.
type StudentDashboard struct {
	EnrolledSections int             `json:"enrolled_sections"`
	EnrolledCredits  int             `json:"enrolled_credits"`
	GPA              decimal.Decimal `json:"gpa"`
	CreditsEarned    int             `json:"credits_earned"`
	Balance          decimal.Decimal `json:"balance"`
}
