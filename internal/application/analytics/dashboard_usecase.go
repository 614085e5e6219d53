// Package analytics contiene el caso de uso del dashboard: un resumen distinto
// según el rol de la sesión.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/access"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/grading"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
	"github.com/jhoicas/Academico-api/pkg/jwt"
)

// DashboardUseCase arma el resumen del semestre en curso.
//
// Estudiante: créditos matriculados, promedio y saldo de matrícula.
// Personal (admin, docente, tesorería): resumen del departamento.
type DashboardUseCase struct {
	enrollments     repository.EnrollmentRepository
	grades          repository.GradeRepository
	tuition         repository.TuitionRepository
	reports         repository.ReportRepository
	currentSemester string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	enrollments repository.EnrollmentRepository,
	grades repository.GradeRepository,
	tuition repository.TuitionRepository,
	reports repository.ReportRepository,
	currentSemester string,
) *DashboardUseCase {
	return &DashboardUseCase{
		enrollments:     enrollments,
		grades:          grades,
		tuition:         tuition,
		reports:         reports,
		currentSemester: currentSemester,
	}
}

// GetSummary construye el dashboard de la sesión indicada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, id jwt.Identity) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{
		Role:       id.Role,
		Department: id.Department,
		Semester:   uc.currentSemester,
		Pages:      access.Pages(id.Role),
	}
	if id.IsStudent || id.Role == entity.RoleEstudiante {
		sd, err := uc.studentSummary(ctx, id.Department, id.UserID)
		if err != nil {
			return nil, err
		}
		out.Student = sd
		return out, nil
	}
	if uc.currentSemester == "" {
		return out, nil
	}
	s, err := uc.reports.Summary(ctx, id.Department, uc.currentSemester)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen del departamento: %w", err)
	}
	summary := usecase.ToSummaryResponse(s)
	out.Summary = &summary
	return out, nil
}

// studentSummary lanza las tres consultas en paralelo contra el servidor del departamento:
//  1. ListByStudent(semestre)  → secciones y créditos
//  2. Grades.ListByStudent     → promedio y créditos aprobados
//  3. Statement(semestre)      → saldo
func (uc *DashboardUseCase) studentSummary(ctx context.Context, department, studentID string) (*dto.StudentDashboard, error) {
	type enrollResult struct {
		list []entity.Enrollment
		err  error
	}
	type gradesResult struct {
		lines []entity.TranscriptLine
		err   error
	}
	type tuitionResult struct {
		stmt *entity.TuitionStatement
		err  error
	}

	enrollCh := make(chan enrollResult, 1)
	gradesCh := make(chan gradesResult, 1)
	tuitionCh := make(chan tuitionResult, 1)

	go func() {
		if uc.currentSemester == "" {
			enrollCh <- enrollResult{}
			return
		}
		list, err := uc.enrollments.ListByStudent(ctx, department, studentID, uc.currentSemester)
		enrollCh <- enrollResult{list, err}
	}()
	go func() {
		lines, err := uc.grades.ListByStudent(ctx, department, studentID)
		gradesCh <- gradesResult{lines, err}
	}()
	go func() {
		if uc.currentSemester == "" {
			tuitionCh <- tuitionResult{}
			return
		}
		stmt, err := uc.tuition.Statement(ctx, department, studentID, uc.currentSemester)
		tuitionCh <- tuitionResult{stmt, err}
	}()

	enrolled := <-enrollCh
	grades := <-gradesCh
	tuition := <-tuitionCh

	if enrolled.err != nil {
		return nil, fmt.Errorf("dashboard: matrícula: %w", enrolled.err)
	}
	if grades.err != nil {
		return nil, fmt.Errorf("dashboard: notas: %w", grades.err)
	}
	if tuition.err != nil {
		return nil, fmt.Errorf("dashboard: matrícula financiera: %w", tuition.err)
	}

	sd := &dto.StudentDashboard{
		EnrolledSections: len(enrolled.list),
		GPA:              grading.GPA(grades.lines),
		CreditsEarned:    grading.CreditsEarned(grades.lines),
		Balance:          decimal.Zero,
	}
	for _, e := range enrolled.list {
		sd.EnrolledCredits += e.Credits
	}
	if tuition.stmt != nil {
		sd.Balance = tuition.stmt.Balance()
	}
	return sd, nil
}
