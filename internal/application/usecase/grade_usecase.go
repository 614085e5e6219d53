package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/grading"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// GradeUseCase carga de notas y consulta del historial.
type GradeUseCase struct {
	tx       repository.GradeTxRunner
	grades   repository.GradeRepository
	students repository.StudentRepository
}

// NewGradeUseCase construye el caso de uso.
func NewGradeUseCase(tx repository.GradeTxRunner, grades repository.GradeRepository, students repository.StudentRepository) *GradeUseCase {
	return &GradeUseCase{tx: tx, grades: grades, students: students}
}

// SubmitGrades calcula y graba las notas de una sección en una sola transacción.
// lecturerID vacío (administrador) omite la verificación de docente asignado.
func (uc *GradeUseCase) SubmitGrades(ctx context.Context, department, sectionID, lecturerID string, in dto.GradeBatchRequest) (*dto.GradeBatchResponse, error) {
	if len(in.Entries) == 0 {
		return nil, fmt.Errorf("%w: entries no puede estar vacío", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(in.Entries))
	grades := make([]*entity.Grade, 0, len(in.Entries))
	for _, e := range in.Entries {
		studentID := strings.TrimSpace(e.StudentID)
		if _, dup := seen[studentID]; dup {
			return nil, fmt.Errorf("%w: estudiante %s repetido", domain.ErrInvalidInput, studentID)
		}
		seen[studentID] = struct{}{}

		res, err := grading.Compute(e.Midterm, e.Final)
		if err != nil {
			return nil, fmt.Errorf("estudiante %s: %w", studentID, err)
		}
		grades = append(grades, &entity.Grade{
			SectionID: sectionID,
			StudentID: studentID,
			Midterm:   e.Midterm,
			Final:     e.Final,
			Total:     res.Total,
			Letter:    res.Letter,
			Passed:    res.Passed,
			GradedBy:  lecturerID,
			UpdatedAt: now,
		})
	}

	err := uc.tx.RunGrades(ctx, department, func(repo repository.GradeRepository) error {
		for _, g := range grades {
			if err := repo.Save(ctx, department, lecturerID, g); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.GradeBatchResponse{SectionID: sectionID, Saved: len(grades), Grades: make([]dto.GradeResponse, 0, len(grades))}
	for _, g := range grades {
		out.Grades = append(out.Grades, dto.GradeResponse{
			SectionID: g.SectionID,
			StudentID: g.StudentID,
			Midterm:   g.Midterm,
			Final:     g.Final,
			Total:     g.Total,
			Letter:    g.Letter,
			Passed:    g.Passed,
			UpdatedAt: g.UpdatedAt,
		})
	}
	return out, nil
}

// Transcript historial del estudiante con promedio ponderado por créditos.
func (uc *GradeUseCase) Transcript(ctx context.Context, department, studentID string) (*dto.TranscriptResponse, error) {
	s, err := uc.students.GetByID(ctx, department, studentID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.grades.ListByStudent(ctx, department, studentID)
	if err != nil {
		return nil, err
	}
	out := &dto.TranscriptResponse{
		StudentID:     s.ID,
		Lines:         make([]dto.TranscriptLineResponse, 0, len(lines)),
		GPA:           grading.GPA(lines),
		CreditsEarned: grading.CreditsEarned(lines),
	}
	for _, l := range lines {
		out.CreditsAttempted += l.Credits
		out.Lines = append(out.Lines, dto.TranscriptLineResponse{
			Semester:   l.Semester,
			CourseCode: l.CourseCode,
			CourseName: l.CourseName,
			Credits:    l.Credits,
			Midterm:    l.Midterm,
			Final:      l.Final,
			Total:      l.Total,
			Letter:     l.Letter,
			Passed:     l.Passed,
		})
	}
	return out, nil
}
