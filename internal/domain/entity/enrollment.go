package entity

import "time"

// Enrollment matrícula de un estudiante en una sección.
type Enrollment struct {
	SectionID  string
	CourseCode string
	CourseName string
	Credits    int
	Semester   string
	Schedule   string
	Room       string
	EnrolledAt time.Time
}
