package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Academico-api/internal/application/ports"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/grading"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// TranscriptUseCase certificados de notas en PDF y XML.
type TranscriptUseCase struct {
	students repository.StudentRepository
	grades   repository.GradeRepository
	pdf      ports.TranscriptPDFGenerator
	xml      ports.TranscriptXMLBuilder
	now      func() time.Time
}

// NewTranscriptUseCase construye el caso de uso inyectando los generadores.
func NewTranscriptUseCase(
	students repository.StudentRepository,
	grades repository.GradeRepository,
	pdf ports.TranscriptPDFGenerator,
	xml ports.TranscriptXMLBuilder,
) *TranscriptUseCase {
	return &TranscriptUseCase{students: students, grades: grades, pdf: pdf, xml: xml, now: time.Now}
}

// PDF genera el certificado en PDF. Devuelve bytes y nombre de archivo sugerido.
func (uc *TranscriptUseCase) PDF(ctx context.Context, department, studentID string) ([]byte, string, error) {
	data, err := uc.load(ctx, department, studentID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.Generate(*data)
	if err != nil {
		return nil, "", fmt.Errorf("transcript: generar PDF: %w", err)
	}
	return b, fmt.Sprintf("certificado-%s.pdf", data.Student.ID), nil
}

// XML genera el certificado XML con su digest canónico.
func (uc *TranscriptUseCase) XML(ctx context.Context, department, studentID string) ([]byte, string, error) {
	data, err := uc.load(ctx, department, studentID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xml.Build(*data)
	if err != nil {
		return nil, "", fmt.Errorf("transcript: generar XML: %w", err)
	}
	return b, fmt.Sprintf("certificado-%s.xml", data.Student.ID), nil
}

func (uc *TranscriptUseCase) load(ctx context.Context, department, studentID string) (*ports.TranscriptData, error) {
	s, err := uc.students.GetByID(ctx, department, studentID)
	if err != nil {
		return nil, fmt.Errorf("transcript: obtener estudiante: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.grades.ListByStudent(ctx, department, studentID)
	if err != nil {
		return nil, fmt.Errorf("transcript: obtener notas: %w", err)
	}
	attempted := 0
	for _, l := range lines {
		attempted += l.Credits
	}
	return &ports.TranscriptData{
		Department:       department,
		Student:          *s,
		Lines:            lines,
		GPA:              grading.GPA(lines),
		CreditsAttempted: attempted,
		CreditsEarned:    grading.CreditsEarned(lines),
		IssuedAt:         uc.now().UTC(),
	}, nil
}
