package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain"
)

// EnrollmentHandler matrícula del estudiante en secciones.
type EnrollmentHandler struct {
	uc *usecase.EnrollmentUseCase
}

// NewEnrollmentHandler construye el handler.
func NewEnrollmentHandler(uc *usecase.EnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

// List godoc
// @Summary      Secciones matriculadas
// @Tags         enrollments
// @Security     Bearer
// @Produce      json
// @Param        semester    query  string  false  "Semestre; 'all' para todos"
// @Param        student_id  query  string  false  "Solo personal: estudiante a consultar"
// @Success      200  {object}  dto.EnrollmentListResponse
// @Router       /api/enrollments [get]
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	studentID, err := enrollmentStudent(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.Context(), GetDepartment(c), studentID, c.Query("semester"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Enroll godoc
// @Summary      Matricular sección
// @Tags         enrollments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnrollRequest  true  "Sección"
// @Success      201   {object}  dto.EnrollmentResponse
// @Failure      409   {object}  dto.ErrorResponse  "sin cupo, ya matriculado, choque de horario o matrícula cerrada"
// @Router       /api/enrollments [post]
func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	studentID, err := enrollmentStudent(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.EnrollRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Enroll(c.Context(), GetDepartment(c), studentID, in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Cancel godoc
// @Summary      Anular matrícula
// @Tags         enrollments
// @Security     Bearer
// @Produce      json
// @Param        sectionId  path  string  true  "Sección"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/enrollments/{sectionId} [delete]
func (h *EnrollmentHandler) Cancel(c *fiber.Ctx) error {
	studentID, err := enrollmentStudent(c)
	if err != nil {
		return fail(c, err)
	}
	sectionID := c.Params("sectionId")
	if err := h.uc.Cancel(c.Context(), GetDepartment(c), studentID, sectionID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"section_id": sectionID, "cancelled": true})
}

// enrollmentStudent el estudiante opera sobre sí mismo; el personal indica ?student_id=.
func enrollmentStudent(c *fiber.Ctx) (string, error) {
	id, found := GetIdentity(c)
	if !found {
		return "", domain.ErrUnauthorized
	}
	if isStudent(id) {
		return id.UserID, nil
	}
	studentID := c.Query("student_id")
	if studentID == "" {
		return "", fmt.Errorf("%w: student_id es requerido", domain.ErrInvalidInput)
	}
	return studentID, nil
}
