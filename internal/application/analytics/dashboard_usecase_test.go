package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Academico-api/internal/application/analytics"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/pkg/jwt"
)

type fakeEnrollments struct{ list []entity.Enrollment }

func (f fakeEnrollments) ListByStudent(context.Context, string, string, string) ([]entity.Enrollment, error) {
	return f.list, nil
}
func (f fakeEnrollments) Enroll(context.Context, string, string, string) (*entity.Enrollment, error) {
	return nil, nil
}
func (f fakeEnrollments) Cancel(context.Context, string, string, string) error { return nil }

type fakeGrades struct {
	lines []entity.TranscriptLine
	err   error
}

func (f fakeGrades) Save(context.Context, string, string, *entity.Grade) error { return nil }
func (f fakeGrades) ListByStudent(context.Context, string, string) ([]entity.TranscriptLine, error) {
	return f.lines, f.err
}

type fakeTuition struct{ stmt *entity.TuitionStatement }

func (f fakeTuition) Statement(context.Context, string, string, string) (*entity.TuitionStatement, error) {
	return f.stmt, nil
}
func (f fakeTuition) Pay(context.Context, string, entity.Payment) (*entity.PaymentReceipt, error) {
	return nil, nil
}
func (f fakeTuition) ListPayments(context.Context, string, string) ([]entity.Payment, error) {
	return nil, nil
}

type fakeReports struct{ calls int }

func (f *fakeReports) Summary(_ context.Context, _, semester string) (*entity.DepartmentSummary, error) {
	f.calls++
	return &entity.DepartmentSummary{
		Semester: semester, Students: 120, ActiveStudents: 110,
		AmountDue: decimal.NewFromInt(1000), AmountPaid: decimal.NewFromInt(400),
	}, nil
}
func (f *fakeReports) CourseStats(context.Context, string, string) ([]entity.CourseStat, error) {
	return nil, nil
}
func (f *fakeReports) Debtors(context.Context, string, string) ([]entity.Debtor, error) {
	return nil, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetSummary_Estudiante(t *testing.T) {
	reports := &fakeReports{}
	uc := analytics.NewDashboardUseCase(
		fakeEnrollments{list: []entity.Enrollment{{Credits: 3}, {Credits: 4}}},
		fakeGrades{lines: []entity.TranscriptLine{{Credits: 3, Total: d("8"), Passed: true}, {Credits: 2, Total: d("3"), Passed: false}}},
		fakeTuition{stmt: &entity.TuitionStatement{AmountDue: d("700"), AmountPaid: d("250")}},
		reports,
		"2026-1",
	)

	out, err := uc.GetSummary(context.Background(), jwt.Identity{UserID: "SV001", Role: entity.RoleEstudiante, Department: "Ingeniería", IsStudent: true})
	require.NoError(t, err)
	require.NotNil(t, out.Student)
	assert.Nil(t, out.Summary)
	assert.Equal(t, 2, out.Student.EnrolledSections)
	assert.Equal(t, 7, out.Student.EnrolledCredits)
	assert.Equal(t, 3, out.Student.CreditsEarned)
	assert.True(t, d("6").Equal(out.Student.GPA))
	assert.True(t, d("450").Equal(out.Student.Balance))
	assert.Equal(t, 0, reports.calls)
	assert.Contains(t, out.Pages, "my-grades")
}

func TestGetSummary_Personal(t *testing.T) {
	reports := &fakeReports{}
	uc := analytics.NewDashboardUseCase(fakeEnrollments{}, fakeGrades{}, fakeTuition{}, reports, "2026-1")

	out, err := uc.GetSummary(context.Background(), jwt.Identity{UserID: "T1", Role: entity.RoleTesoreria, Department: "Ingeniería"})
	require.NoError(t, err)
	require.NotNil(t, out.Summary)
	assert.Nil(t, out.Student)
	assert.Equal(t, 120, out.Summary.Students)
	assert.True(t, d("600").Equal(out.Summary.Outstanding))
	assert.Equal(t, "2026-1", out.Summary.Semester)
}

func TestGetSummary_ErrorDeDepartamento(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		fakeEnrollments{},
		fakeGrades{err: domain.ErrDepartmentUnavailable},
		fakeTuition{},
		&fakeReports{},
		"2026-1",
	)
	_, err := uc.GetSummary(context.Background(), jwt.Identity{UserID: "SV001", Role: entity.RoleEstudiante, IsStudent: true})
	assert.True(t, errors.Is(err, domain.ErrDepartmentUnavailable))
}
