package entity

// CourseSection grupo de una asignatura en un semestre.
type CourseSection struct {
	ID             string
	CourseCode     string
	CourseName     string
	Credits        int
	Semester       string
	LecturerID     string
	LecturerName   string
	Capacity       int
	Enrolled       int
	Schedule       string // "Lun 1-3"
	Room           string
	EnrollmentOpen bool
}

// SectionFilter filtros del listado de secciones.
type SectionFilter struct {
	Semester   string
	LecturerID string
	CourseCode string
	OnlyOpen   bool
}
