package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Academico-api/internal/application/analytics"
)

// DashboardHandler resumen inicial según el rol de la sesión.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el dashboard del semestre en curso.
// GET /api/dashboard
//
// Estudiante: créditos matriculados, promedio y saldo. Personal: resumen del departamento.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	id, found := GetIdentity(c)
	if !found {
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión no encontrada")
	}
	out, err := h.uc.GetSummary(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
