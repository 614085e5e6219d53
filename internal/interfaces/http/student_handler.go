package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/access"
)

// StudentHandler fichas de estudiantes del departamento de la sesión.
type StudentHandler struct {
	uc *usecase.StudentUseCase
}

// NewStudentHandler construye el handler.
func NewStudentHandler(uc *usecase.StudentUseCase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// List godoc
// @Summary      Listar estudiantes
// @Tags         students
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre o código"
// @Param        class   query  string  false  "Clase"
// @Param        status  query  string  false  "active | suspended | graduated"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.StudentListResponse
// @Router       /api/students [get]
func (h *StudentHandler) List(c *fiber.Ctx) error {
	var in dto.StudentListRequest
	if err := parseQuery(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.Context(), GetDepartment(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// GetByID godoc
// @Summary      Obtener ficha de estudiante
// @Description  El personal con acceso a la página students ve cualquier ficha; un estudiante solo la propia.
// @Tags         students
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Código del estudiante"
// @Success      200  {object}  dto.StudentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/students/{id} [get]
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := authorizeStudentRead(c, id, access.PageStudents); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), GetDepartment(c), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "estudiante no encontrado")
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Registrar estudiante
// @Tags         students
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStudentRequest  true  "Ficha y credenciales iniciales"
// @Success      201   {object}  dto.StudentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/students [post]
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStudentRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetDepartment(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar estudiante
// @Tags         students
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Código del estudiante"
// @Param        body  body  dto.UpdateStudentRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.StudentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/students/{id} [put]
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStudentRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Context(), GetDepartment(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "estudiante no encontrado")
	}
	return ok(c, out)
}
