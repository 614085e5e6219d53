package dto

// StudentListRequest filtros del listado (query string).
type StudentListRequest struct {
	PageRequest
	Search string `query:"search" validate:"max=100"`
	Class  string `query:"class" validate:"max=30"`
	Status string `query:"status" validate:"omitempty,oneof=active suspended graduated"`
}

// CreateStudentRequest alta de estudiante y de su cuenta de acceso.
type CreateStudentRequest struct {
	ID             string `json:"id" validate:"required,alphanum,max=20"`
	FullName       string `json:"full_name" validate:"required,max=150"`
	Email          string `json:"email" validate:"omitempty,email,max=150"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	ClassName      string `json:"class_name" validate:"omitempty,max=30"`
	Major          string `json:"major" validate:"omitempty,max=120"`
	EnrollmentYear int    `json:"enrollment_year" validate:"required,min=1950,max=2100"`
	DateOfBirth    string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Username       string `json:"username" validate:"omitempty,max=60"` // vacío: se usa el ID
	Password       string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateStudentRequest campos editables; vacío conserva el valor actual.
type UpdateStudentRequest struct {
	FullName  string `json:"full_name" validate:"omitempty,max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=150"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	ClassName string `json:"class_name" validate:"omitempty,max=30"`
	Major     string `json:"major" validate:"omitempty,max=120"`
	Status    string `json:"status" validate:"omitempty,oneof=active suspended graduated"`
}

// StudentResponse ficha del estudiante.
type StudentResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ClassName      string `json:"class_name"`
	Major          string `json:"major"`
	EnrollmentYear int    `json:"enrollment_year"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	Status         string `json:"status"`
}

// StudentListResponse página de estudiantes.
type StudentListResponse struct {
	Items []StudentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
