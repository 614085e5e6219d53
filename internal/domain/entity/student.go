package entity

import "time"

// Estados de un estudiante.
const (
	StudentStatusActive    = "active"
	StudentStatusSuspended = "suspended"
	StudentStatusGraduated = "graduated"
)

// Student ficha del estudiante en la base de su departamento.
type Student struct {
	ID             string
	FullName       string
	Email          string
	Phone          string
	ClassName      string
	Major          string
	EnrollmentYear int
	DateOfBirth    *time.Time
	Status         string
}

// StudentFilter filtros del listado de estudiantes.
type StudentFilter struct {
	Search    string
	ClassName string
	Status    string
	Limit     int
	Offset    int
}
