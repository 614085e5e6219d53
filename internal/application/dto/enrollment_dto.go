package dto

import "time"

// EnrollRequest matrícula en una sección.
type EnrollRequest struct {
	SectionID string `json:"section_id" validate:"required,max=30"`
}

// EnrollmentResponse sección matriculada.
type EnrollmentResponse struct {
	SectionID  string    `json:"section_id"`
	CourseCode string    `json:"course_code"`
	CourseName string    `json:"course_name"`
	Credits    int       `json:"credits"`
	Semester   string    `json:"semester"`
	Schedule   string    `json:"schedule"`
	Room       string    `json:"room"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// EnrollmentListResponse matrícula del estudiante con total de créditos.
type EnrollmentListResponse struct {
	Semester string               `json:"semester,omitempty"`
	Credits  int                  `json:"credits"`
	Items    []EnrollmentResponse `json:"items"`
}
