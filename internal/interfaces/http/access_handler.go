package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain/access"
)

// AccessHandler expone la tabla rol -> páginas para que el dashboard arme el menú.
type AccessHandler struct{}

// NewAccessHandler construye el handler.
func NewAccessHandler() *AccessHandler { return &AccessHandler{} }

// Pages godoc
// @Summary      Páginas permitidas para el rol de la sesión
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PagesResponse
// @Router       /api/access/pages [get]
func (h *AccessHandler) Pages(c *fiber.Ctx) error {
	role := GetRole(c)
	return ok(c, dto.PagesResponse{
		Role:     role,
		Pages:    access.Pages(role),
		HomePage: access.HomePage(role),
	})
}

// CheckPage godoc
// @Summary      Verificar acceso a una página
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Param        page  path  string  true  "Identificador de página"
// @Success      200   {object}  dto.PageCheckResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/access/pages/{page} [get]
func (h *AccessHandler) CheckPage(c *fiber.Ctx) error {
	page := c.Params("page")
	if !access.IsValidPage(page) {
		return errorJSON(c, fiber.StatusNotFound, "PAGE_NOT_FOUND", "la página '"+page+"' no existe")
	}
	return ok(c, dto.PageCheckResponse{Page: page, Allowed: access.CanAccess(GetRole(c), page)})
}
