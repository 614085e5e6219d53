package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/usecase"
)

// DepartmentHandler directorio de departamentos.
type DepartmentHandler struct {
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar departamentos
// @Description  Público: la pantalla de login muestra los departamentos disponibles. No expone server_name.
// @Tags         departments
// @Produce      json
// @Success      200  {array}   dto.DepartmentResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), false)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Resolve godoc
// @Summary      Resolver departamento
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre del departamento (sin distinguir mayúsculas ni tildes)"
// @Success      200   {object}  dto.DepartmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/departments/{name} [get]
func (h *DepartmentHandler) Resolve(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_NAME", "nombre de departamento inválido")
	}
	out, err := h.uc.Resolve(c.Context(), name)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
