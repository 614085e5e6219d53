package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/access"
)

// TuitionHandler estado de cuenta y pagos de matrícula.
type TuitionHandler struct {
	uc *usecase.TuitionUseCase
}

// NewTuitionHandler construye el handler.
func NewTuitionHandler(uc *usecase.TuitionUseCase) *TuitionHandler {
	return &TuitionHandler{uc: uc}
}

// Me godoc
// @Summary      Mi estado de cuenta
// @Tags         tuition
// @Security     Bearer
// @Produce      json
// @Param        semester  query  string  false  "Semestre (por defecto el actual)"
// @Success      200  {object}  dto.TuitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tuition/me [get]
func (h *TuitionHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Statement(c.Context(), GetDepartment(c), GetUserID(c), c.Query("semester"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Student godoc
// @Summary      Estado de cuenta de un estudiante
// @Tags         tuition
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "Código del estudiante"
// @Param        semester  query  string  false  "Semestre"
// @Success      200  {object}  dto.TuitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tuition/students/{id} [get]
func (h *TuitionHandler) Student(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := authorizeStudentRead(c, id, access.PagePayments); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Statement(c.Context(), GetDepartment(c), id, c.Query("semester"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Pay godoc
// @Summary      Registrar pago de matrícula
// @Tags         tuition
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "el pago supera el saldo"
// @Router       /api/tuition/payments [post]
func (h *TuitionHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := parseBody(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Pay(c.Context(), GetDepartment(c), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// ListPayments godoc
// @Summary      Listar pagos
// @Tags         tuition
// @Security     Bearer
// @Produce      json
// @Param        student_id  query  string  false  "Filtrar por estudiante"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/tuition/payments [get]
func (h *TuitionHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.Context(), GetDepartment(c), c.Query("student_id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
