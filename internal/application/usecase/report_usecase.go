package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Academico-api/internal/application/dto"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

// ReportUseCase reportes del departamento (sp_report_*).
type ReportUseCase struct {
	repo            repository.ReportRepository
	currentSemester string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, currentSemester string) *ReportUseCase {
	return &ReportUseCase{repo: repo, currentSemester: currentSemester}
}

// Summary totales del semestre.
func (uc *ReportUseCase) Summary(ctx context.Context, department, semester string) (*dto.DepartmentSummaryResponse, error) {
	semester, err := resolveSemester(semester, uc.currentSemester)
	if err != nil {
		return nil, err
	}
	s, err := uc.repo.Summary(ctx, department, semester)
	if err != nil {
		return nil, err
	}
	out := ToSummaryResponse(s)
	return &out, nil
}

// CourseStats rendimiento por sección.
func (uc *ReportUseCase) CourseStats(ctx context.Context, department, semester string) ([]dto.CourseStatResponse, error) {
	semester, err := resolveSemester(semester, uc.currentSemester)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.CourseStats(ctx, department, semester)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseStatResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CourseStatResponse{
			SectionID:    c.SectionID,
			CourseCode:   c.CourseCode,
			CourseName:   c.CourseName,
			LecturerName: c.LecturerName,
			Enrolled:     c.Enrolled,
			Graded:       c.Graded,
			Average:      nullDecimal(c.Average),
			PassRate:     nullDecimal(c.PassRate),
		})
	}
	return out, nil
}

// Debtors estudiantes con saldo y total adeudado.
func (uc *ReportUseCase) Debtors(ctx context.Context, department, semester string) (*dto.DebtorsResponse, error) {
	semester, err := resolveSemester(semester, uc.currentSemester)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Debtors(ctx, department, semester)
	if err != nil {
		return nil, err
	}
	out := &dto.DebtorsResponse{Semester: semester, Items: make([]dto.DebtorResponse, 0, len(list))}
	total := decimal.Zero
	for _, d := range list {
		total = total.Add(d.Balance)
		out.Items = append(out.Items, dto.DebtorResponse{
			StudentID:  d.StudentID,
			FullName:   d.FullName,
			ClassName:  d.ClassName,
			AmountDue:  d.AmountDue,
			AmountPaid: d.AmountPaid,
			Balance:    d.Balance,
		})
	}
	out.Count = len(out.Items)
	out.TotalOutstanding = total
	return out, nil
}

// ToSummaryResponse mapea el resumen; lo comparte el dashboard.
func ToSummaryResponse(s *entity.DepartmentSummary) dto.DepartmentSummaryResponse {
	outstanding := s.AmountDue.Sub(s.AmountPaid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return dto.DepartmentSummaryResponse{
		Semester:       s.Semester,
		Students:       s.Students,
		ActiveStudents: s.ActiveStudents,
		Sections:       s.Sections,
		Enrollments:    s.Enrollments,
		AmountDue:      s.AmountDue,
		AmountPaid:     s.AmountPaid,
		Outstanding:    outstanding,
	}
}
