package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/auth"
	"github.com/jhoicas/Academico-api/internal/application/dto"
)

// AuthHandler maneja login, sesión y cambio de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión en un departamento
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password, department"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, found := GetIdentity(c)
	if !found {
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión no encontrada")
	}
	return ok(c, auth.SessionFromIdentity(id))
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "contraseña actual y nueva"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	id, found := GetIdentity(c)
	if !found {
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión no encontrada")
	}
	var in dto.ChangePasswordRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	if err := h.uc.ChangePassword(c.Context(), id, in); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"changed": true})
}
