package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/access"
)

// GradeHandler historial de notas con promedio ponderado.
type GradeHandler struct {
	uc *usecase.GradeUseCase
}

// NewGradeHandler construye el handler.
func NewGradeHandler(uc *usecase.GradeUseCase) *GradeHandler {
	return &GradeHandler{uc: uc}
}

// Me godoc
// @Summary      Mis notas
// @Tags         grades
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TranscriptResponse
// @Router       /api/grades/me [get]
func (h *GradeHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Transcript(c.Context(), GetDepartment(c), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Student godoc
// @Summary      Notas de un estudiante
// @Tags         grades
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Código del estudiante"
// @Success      200  {object}  dto.TranscriptResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/grades/students/{id} [get]
func (h *GradeHandler) Student(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := authorizeStudentRead(c, id, access.PageStudents); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Transcript(c.Context(), GetDepartment(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
