package dto

import "github.com/shopspring/decimal"

// SectionListRequest filtros del listado de secciones.
type SectionListRequest struct {
	Semester   string `query:"semester" validate:"max=10"`
	LecturerID string `query:"lecturer_id" validate:"max=20"`
	CourseCode string `query:"course_code" validate:"max=20"`
	Open       bool   `query:"open"`
}

// SectionResponse sección con cupos.
type SectionResponse struct {
	ID             string `json:"id"`
	CourseCode     string `json:"course_code"`
	CourseName     string `json:"course_name"`
	Credits        int    `json:"credits"`
	Semester       string `json:"semester"`
	LecturerID     string `json:"lecturer_id,omitempty"`
	LecturerName   string `json:"lecturer_name,omitempty"`
	Capacity       int    `json:"capacity"`
	Enrolled       int    `json:"enrolled"`
	Available      int    `json:"available"`
	Schedule       string `json:"schedule"`
	Room           string `json:"room"`
	EnrollmentOpen bool   `json:"enrollment_open"`
}

// RosterEntryResponse estudiante de la lista de clase con su nota (si existe).
type RosterEntryResponse struct {
	StudentID string           `json:"student_id"`
	FullName  string           `json:"full_name"`
	ClassName string           `json:"class_name"`
	Midterm   *decimal.Decimal `json:"midterm"`
	Final     *decimal.Decimal `json:"final"`
	Total     *decimal.Decimal `json:"total"`
	Letter    string           `json:"letter,omitempty"`
}

// RosterResponse lista de clase.
type RosterResponse struct {
	Section SectionResponse       `json:"section"`
	Entries []RosterEntryResponse `json:"entries"`
}
