package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// CourseHandler secciones, listas de clase y carga de notas.
type CourseHandler struct {
	courses *usecase.CourseUseCase
	grades  *usecase.GradeUseCase
}

// NewCourseHandler construye el handler.
func NewCourseHandler(courses *usecase.CourseUseCase, grades *usecase.GradeUseCase) *CourseHandler {
	return &CourseHandler{courses: courses, grades: grades}
}

// List godoc
// @Summary      Listar secciones
// @Tags         courses
// @Security     Bearer
// @Produce      json
// @Param        semester     query  string  false  "Semestre (por defecto el actual)"
// @Param        lecturer_id  query  string  false  "Docente"
// @Param        course_code  query  string  false  "Código de curso"
// @Param        open         query  bool    false  "Solo con matrícula abierta"
// @Success      200  {array}  dto.SectionResponse
// @Router       /api/courses [get]
func (h *CourseHandler) List(c *fiber.Ctx) error {
	var in dto.SectionListRequest
	if err := parseQuery(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.courses.ListSections(c.Context(), GetDepartment(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Roster godoc
// @Summary      Lista de clase con notas
// @Tags         courses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sección"
// @Success      200  {object}  dto.RosterResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/courses/{id}/roster [get]
func (h *CourseHandler) Roster(c *fiber.Ctx) error {
	out, err := h.courses.Roster(c.Context(), GetDepartment(c), c.Params("id"), lecturerScope(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// SubmitGrades godoc
// @Summary      Cargar notas de la sección
// @Description  Todas las entradas se guardan en una sola transacción; si una falla no se guarda ninguna.
// @Tags         courses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la sección"
// @Param        body  body  dto.GradeBatchRequest  true  "Notas por estudiante"
// @Success      200   {object}  dto.GradeBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/courses/{id}/grades [put]
func (h *CourseHandler) SubmitGrades(c *fiber.Ctx) error {
	var in dto.GradeBatchRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.grades.SubmitGrades(c.Context(), GetDepartment(c), c.Params("id"), lecturerScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// lecturerScope un docente solo opera sobre sus secciones; admin no tiene restricción.
func lecturerScope(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleDocente {
		return GetUserID(c)
	}
	return ""
}
