package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// errorMapping traducción de un error de dominio a status + código.
type errorMapping struct {
	target error
	status int
	code   string
}

// domainErrors el orden importa: se usa el primer errors.Is que coincida.
var domainErrors = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrInactiveAccount, fiber.StatusForbidden, "INACTIVE_ACCOUNT"},
	{domain.ErrNotSectionLecturer, fiber.StatusForbidden, "NOT_SECTION_LECTURER"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrDepartmentNotFound, fiber.StatusNotFound, "DEPARTMENT_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrSectionFull, fiber.StatusConflict, "SECTION_FULL"},
	{domain.ErrAlreadyEnrolled, fiber.StatusConflict, "ALREADY_ENROLLED"},
	{domain.ErrScheduleConflict, fiber.StatusConflict, "SCHEDULE_CONFLICT"},
	{domain.ErrEnrollmentClosed, fiber.StatusConflict, "ENROLLMENT_CLOSED"},
	{domain.ErrPaymentExceedsBalance, fiber.StatusConflict, "PAYMENT_EXCEEDS_BALANCE"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrDepartmentUnavailable, fiber.StatusServiceUnavailable, "DEPARTMENT_UNAVAILABLE"},
}

// unavailableMessage texto fijo de los 5xx mapeados; el detalle (servidor, driver) queda en el log.
const unavailableMessage = "el servidor del departamento no está disponible"

// ok responde {"success": true, "data": ...}.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.Envelope{Success: true, Data: data})
}

// created igual que ok con 201.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: data})
}

// errorJSON responde el envelope de error con el status indicado.
func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: msg})
}

// fail traduce err a la respuesta HTTP. Los no mapeados se registran y responden 500
// sin exponer el detalle interno.
func fail(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return errorJSON(c, fiber.StatusBadRequest, reqErr.code, reqErr.msg)
	}
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			ev := log.Warn()
			if m.status >= fiber.StatusInternalServerError {
				ev = log.Error()
			}
			ev.Err(err).
				Str("path", c.Path()).
				Str("department", GetDepartment(c)).
				Str("code", m.code).
				Msg("petición rechazada")
			if m.status >= fiber.StatusInternalServerError {
				return errorJSON(c, m.status, m.code, unavailableMessage)
			}
			return errorJSON(c, m.status, m.code, err.Error())
		}
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("department", GetDepartment(c)).
		Msg("error interno")
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}

// requestError error de formato o validación de la petición (400).
type requestError struct {
	code string
	msg  string
}

func (e *requestError) Error() string { return e.msg }

// parseBody lee el JSON del cuerpo y valida los tags `validate`.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"}
	}
	return validateStruct(out)
}

// parseQuery lee la query string y valida.
func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &requestError{code: "INVALID_QUERY", msg: "parámetros inválidos"}
	}
	return validateStruct(out)
}

func validateStruct(out any) error {
	err := validate.Struct(out)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &requestError{code: "VALIDATION", msg: fe.Field() + ": regla " + fe.Tag()}
	}
	return &requestError{code: "VALIDATION", msg: err.Error()}
}
