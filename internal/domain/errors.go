package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrInactiveAccount = errors.New("cuenta inactiva")

	// Enrutamiento por departamento.
	ErrDepartmentNotFound    = errors.New("departamento no encontrado en el directorio")
	ErrDepartmentUnavailable = errors.New("servidor del departamento no disponible")

	// Reglas que aplican los procedimientos almacenados del departamento.
	ErrSectionFull           = errors.New("la sección no tiene cupos disponibles")
	ErrAlreadyEnrolled       = errors.New("el estudiante ya está matriculado en la sección")
	ErrScheduleConflict      = errors.New("choque de horario con otra sección matriculada")
	ErrEnrollmentClosed      = errors.New("el periodo de matrícula de la sección está cerrado")
	ErrPaymentExceedsBalance = errors.New("el pago supera el saldo pendiente")
	ErrNotSectionLecturer    = errors.New("el docente no está asignado a la sección")
)
