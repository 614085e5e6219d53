package entity

// Roles válidos de una cuenta.
const (
	RoleAdmin      = "admin"
	RoleDocente    = "docente"
	RoleEstudiante = "estudiante"
	RoleTesoreria  = "tesoreria"
)

// Account cuenta de acceso de un departamento (devuelta por sp_login).
// Para estudiantes ID coincide con el código del estudiante.
type Account struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	FullName     string
	Role         string
	IsStudent    bool
	Active       bool
}

