package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/access"
)

// ReportHandler reportes del departamento y certificados de notas.
type ReportHandler struct {
	reports     *usecase.ReportUseCase
	transcripts *usecase.TranscriptUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *usecase.ReportUseCase, transcripts *usecase.TranscriptUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, transcripts: transcripts}
}

// Summary godoc
// @Summary      Resumen del departamento
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        semester  query  string  false  "Semestre (por defecto el actual)"
// @Success      200  {object}  dto.DepartmentSummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reports.Summary(c.Context(), GetDepartment(c), c.Query("semester"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// CourseStats godoc
// @Summary      Estadísticas por curso
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        semester  query  string  false  "Semestre"
// @Success      200  {array}  dto.CourseStatResponse
// @Router       /api/reports/courses [get]
func (h *ReportHandler) CourseStats(c *fiber.Ctx) error {
	out, err := h.reports.CourseStats(c.Context(), GetDepartment(c), c.Query("semester"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Debtors godoc
// @Summary      Estudiantes con saldo pendiente
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        semester  query  string  false  "Semestre"
// @Success      200  {object}  dto.DebtorsResponse
// @Router       /api/reports/debtors [get]
func (h *ReportHandler) Debtors(c *fiber.Ctx) error {
	out, err := h.reports.Debtors(c.Context(), GetDepartment(c), c.Query("semester"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Transcript godoc
// @Summary      Certificado de notas
// @Description  {file} es "<código>.pdf" o "<código>.xml". El XML incluye el digest SHA-256 de su forma canónica.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/xml
// @Param        file  path  string  true  "Código del estudiante con extensión"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/transcripts/{file} [get]
func (h *ReportHandler) Transcript(c *fiber.Ctx) error {
	file := c.Params("file")
	var (
		studentID   string
		render      func() ([]byte, string, error)
		contentType string
	)
	switch {
	case strings.HasSuffix(file, ".pdf"):
		studentID = strings.TrimSuffix(file, ".pdf")
		contentType = "application/pdf"
		render = func() ([]byte, string, error) {
			return h.transcripts.PDF(c.Context(), GetDepartment(c), studentID)
		}
	case strings.HasSuffix(file, ".xml"):
		studentID = strings.TrimSuffix(file, ".xml")
		contentType = "application/xml; charset=utf-8"
		render = func() ([]byte, string, error) {
			return h.transcripts.XML(c.Context(), GetDepartment(c), studentID)
		}
	default:
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_FORMAT", "formato soportado: .pdf o .xml")
	}
	if studentID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "MISSING_ID", "código de estudiante requerido")
	}
	if err := authorizeStudentRead(c, studentID, access.PageReports); err != nil {
		return fail(c, err)
	}

	body, filename, err := render()
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
