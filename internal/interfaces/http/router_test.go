package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/Academico-api/internal/application/analytics"
	"github.com/jhoicas/Academico-api/internal/application/auth"
	"github.com/jhoicas/Academico-api/internal/application/ports"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
	"github.com/jhoicas/Academico-api/internal/infrastructure/transcriptxml"
	apphttp "github.com/jhoicas/Academico-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Academico-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeDirectory struct{}

func (fakeDirectory) Departments(context.Context) ([]entity.Department, error) {
	return []entity.Department{
		{BranchName: "Economía", ServerName: "db-shared"},
		{BranchName: testDepartment, ServerName: "db-eng"},
	}, nil
}

func (fakeDirectory) Resolve(_ context.Context, name string) (entity.Department, error) {
	if strings.EqualFold(name, "ingenieria") || name == testDepartment {
		return entity.Department{BranchName: testDepartment, ServerName: "db-eng"}, nil
	}
	return entity.Department{}, domain.ErrDepartmentNotFound
}

type fakeAccounts struct {
	byUsername map[string]*entity.Account
}

func (f *fakeAccounts) FindByUsername(_ context.Context, _, username string) (*entity.Account, error) {
	return f.byUsername[username], nil
}

func (f *fakeAccounts) ChangePassword(context.Context, string, string, string) error { return nil }

type fakeStudents struct {
	err error
}

func (f *fakeStudents) List(context.Context, string, entity.StudentFilter) ([]entity.Student, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return []entity.Student{{ID: "SV001", FullName: "Ana Pérez", Status: entity.StudentStatusActive}}, 1, nil
}

func (f *fakeStudents) GetByID(_ context.Context, _, id string) (*entity.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id != "SV001" && id != "SV002" {
		return nil, nil
	}
	return &entity.Student{ID: id, FullName: "Estudiante " + id, EnrollmentYear: 2024, Status: entity.StudentStatusActive}, nil
}

func (f *fakeStudents) Create(context.Context, string, *entity.Student, string, string) error {
	return f.err
}

func (f *fakeStudents) Update(context.Context, string, *entity.Student) error { return f.err }

type fakeCourses struct{}

func (fakeCourses) ListSections(context.Context, string, entity.SectionFilter) ([]entity.CourseSection, error) {
	return nil, nil
}

func (fakeCourses) GetSection(_ context.Context, _, id string) (*entity.CourseSection, error) {
	if id != "S1" {
		return nil, nil
	}
	return &entity.CourseSection{ID: "S1", CourseCode: "IS101", LecturerID: "DOC-02", Capacity: 30}, nil
}

func (fakeCourses) Roster(context.Context, string, string) ([]entity.RosterEntry, error) {
	return nil, nil
}

type fakeEnrollments struct {
	enrollErr error
}

func (f *fakeEnrollments) ListByStudent(context.Context, string, string, string) ([]entity.Enrollment, error) {
	return []entity.Enrollment{{SectionID: "S1", CourseCode: "IS101", Credits: 3}}, nil
}

func (f *fakeEnrollments) Enroll(_ context.Context, _, _, sectionID string) (*entity.Enrollment, error) {
	if f.enrollErr != nil {
		return nil, f.enrollErr
	}
	return &entity.Enrollment{SectionID: sectionID}, nil
}

func (f *fakeEnrollments) Cancel(context.Context, string, string, string) error { return nil }

type fakeGrades struct {
	saveErr error
	saved   []entity.Grade
}

func (f *fakeGrades) Save(_ context.Context, _, _ string, g *entity.Grade) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *g)
	return nil
}

func (f *fakeGrades) ListByStudent(context.Context, string, string) ([]entity.TranscriptLine, error) {
	return []entity.TranscriptLine{{
		Semester: "2025-1", CourseCode: "IS101", CourseName: "Programación", Credits: 3,
		Midterm: decimal.NewFromInt(7), Final: decimal.NewFromInt(8), Total: decimal.RequireFromString("7.7"),
		Letter: "B", Passed: true,
	}}, nil
}

type fakeGradeTx struct{ repo *fakeGrades }

func (f fakeGradeTx) RunGrades(_ context.Context, _ string, fn func(repository.GradeRepository) error) error {
	return fn(f.repo)
}

type fakeTuition struct{}

func (fakeTuition) Statement(_ context.Context, _, studentID, semester string) (*entity.TuitionStatement, error) {
	return &entity.TuitionStatement{
		StudentID: studentID, Semester: semester, Credits: 3,
		CreditFee: decimal.NewFromInt(100), AmountDue: decimal.NewFromInt(300), AmountPaid: decimal.NewFromInt(100),
	}, nil
}

func (fakeTuition) Pay(_ context.Context, _ string, p entity.Payment) (*entity.PaymentReceipt, error) {
	return &entity.PaymentReceipt{Payment: p, Balance: decimal.Zero}, nil
}

func (fakeTuition) ListPayments(context.Context, string, string) ([]entity.Payment, error) {
	return nil, nil
}

type fakeReports struct{}

func (fakeReports) Summary(_ context.Context, _, semester string) (*entity.DepartmentSummary, error) {
	return &entity.DepartmentSummary{Semester: semester, Students: 10}, nil
}

func (fakeReports) CourseStats(context.Context, string, string) ([]entity.CourseStat, error) {
	return nil, nil
}

func (fakeReports) Debtors(context.Context, string, string) ([]entity.Debtor, error) {
	return nil, nil
}

type stubPDF struct{}

func (stubPDF) Generate(ports.TranscriptData) ([]byte, error) { return []byte("%PDF-1.4"), nil }

// ──────────────────────────────────────────────────────────────────────────────
// App completa
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	students    *fakeStudents
	enrollments *fakeEnrollments
	grades      *fakeGrades
}

func newRouterApp(t *testing.T) (*fiber.App, *testEnv) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	accounts := &fakeAccounts{byUsername: map[string]*entity.Account{
		"sv001":    {ID: "SV001", Username: "sv001", PasswordHash: string(hash), Role: entity.RoleEstudiante, IsStudent: true, Active: true},
		"inactivo": {ID: "SV009", Username: "inactivo", PasswordHash: string(hash), Role: entity.RoleEstudiante, IsStudent: true},
	}}

	env := &testEnv{students: &fakeStudents{}, enrollments: &fakeEnrollments{}, grades: &fakeGrades{}}
	const semester = "2025-1"
	dir := fakeDirectory{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(dir, accounts, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		DepartmentUC: usecase.NewDepartmentUseCase(dir),
		StudentUC:    usecase.NewStudentUseCase(env.students),
		CourseUC:     usecase.NewCourseUseCase(fakeCourses{}, semester),
		GradeUC:      usecase.NewGradeUseCase(fakeGradeTx{repo: env.grades}, env.grades, env.students),
		EnrollmentUC: usecase.NewEnrollmentUseCase(env.enrollments, semester),
		TuitionUC:    usecase.NewTuitionUseCase(fakeTuition{}, semester),
		ReportUC:     usecase.NewReportUseCase(fakeReports{}, semester),
		TranscriptUC: usecase.NewTranscriptUseCase(env.students, env.grades, stubPDF{}, transcriptxml.NewBuilder()),
		DashboardUC:  appanalytics.NewDashboardUseCase(env.enrollments, env.grades, fakeTuition{}, fakeReports{}, semester),
		JWTSecret:    testJWTSecret,
	})
	return app, env
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
}

func call(t *testing.T, app *fiber.App, method, path, authHeader, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func studentToken(t *testing.T, id string) string {
	return tokenFor(t, pkgjwt.Identity{UserID: id, Username: strings.ToLower(id), Role: entity.RoleEstudiante, Department: testDepartment, IsStudent: true})
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OKDevuelveTokenUsable(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodPost, "/api/auth/login", "",
		`{"username":"sv001","password":"secreto123","department":"INGENIERIA"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var out struct {
		Token   string `json:"token"`
		Session struct {
			Department string `json:"department"`
			IsStudent  bool   `json:"isStudent"`
		} `json:"session"`
		Pages []string `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, testDepartment, out.Session.Department, "el departamento se guarda con su nombre canónico")
	assert.True(t, out.Session.IsStudent)
	assert.Contains(t, out.Pages, "my-grades")

	status, env = call(t, app, http.MethodGet, "/api/auth/me", "Bearer "+out.Token, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"id":"SV001"`)
}

func TestLogin_Errores(t *testing.T) {
	app, _ := newRouterApp(t)
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"password incorrecto", `{"username":"sv001","password":"otra","department":"Ingeniería"}`, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"usuario inexistente", `{"username":"nadie","password":"secreto123","department":"Ingeniería"}`, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"cuenta inactiva", `{"username":"inactivo","password":"secreto123","department":"Ingeniería"}`, http.StatusForbidden, "INACTIVE_ACCOUNT"},
		{"departamento desconocido", `{"username":"sv001","password":"secreto123","department":"Medicina"}`, http.StatusNotFound, "DEPARTMENT_NOT_FOUND"},
		{"sin departamento", `{"username":"sv001","password":"secreto123"}`, http.StatusBadRequest, "VALIDATION"},
		{"cuerpo inválido", `{`, http.StatusBadRequest, "INVALID_BODY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, app, http.MethodPost, "/api/auth/login", "", tt.body)
			assert.Equal(t, tt.status, status)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Code)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Departamentos y acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestDepartments_PublicoSinServidor(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/departments", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Economía")
	assert.NotContains(t, string(env.Data), "db-shared")
}

func TestDepartments_ResolveSoloAdmin(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/departments/ingenieria", tokenForRole(t, entity.RoleAdmin), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"server_name":"db-eng"`)

	status, _ = call(t, app, http.MethodGet, "/api/departments/ingenieria", tokenForRole(t, entity.RoleDocente), "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAccess_PaginasYVerificacion(t *testing.T) {
	app, _ := newRouterApp(t)
	tok := studentToken(t, "SV001")

	status, env := call(t, app, http.MethodGet, "/api/access/pages", tok, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"homePage":"dashboard"`)

	status, env = call(t, app, http.MethodGet, "/api/access/pages/reports", tok, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"allowed":false`)

	status, env = call(t, app, http.MethodGet, "/api/access/pages/no-existe", tok, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "PAGE_NOT_FOUND", env.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estudiantes
// ──────────────────────────────────────────────────────────────────────────────

func TestStudents_EstudianteSoloLeeSuFicha(t *testing.T) {
	app, _ := newRouterApp(t)
	tok := studentToken(t, "SV001")

	status, _ := call(t, app, http.MethodGet, "/api/students/SV001", tok, "")
	assert.Equal(t, http.StatusOK, status)

	status, env := call(t, app, http.MethodGet, "/api/students/SV002", tok, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", env.Code)

	status, env = call(t, app, http.MethodGet, "/api/students", tok, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "PAGE_FORBIDDEN", env.Code)
}

func TestStudents_NoEncontrado(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/students/ZZ999", tokenForRole(t, entity.RoleAdmin), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestStudents_ServidorCaidoRetorna503(t *testing.T) {
	app, envs := newRouterApp(t)
	envs.students.err = fmt.Errorf("%w: db-eng: dial tcp 10.0.0.7:5432: connection refused", domain.ErrDepartmentUnavailable)
	status, env := call(t, app, http.MethodGet, "/api/students?limit=10", tokenForRole(t, entity.RoleAdmin), "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "DEPARTMENT_UNAVAILABLE", env.Code)
	assert.NotContains(t, env.Error, "db-eng")
	assert.NotContains(t, env.Error, "10.0.0.7")
}

func TestStudents_CrearSoloAdminYValida(t *testing.T) {
	app, _ := newRouterApp(t)
	body := `{"id":"sv010","full_name":"Luis Mora","enrollment_year":2025,"password":"secreto123"}`

	status, _ := call(t, app, http.MethodPost, "/api/students", tokenForRole(t, entity.RoleDocente), body)
	assert.Equal(t, http.StatusForbidden, status)

	status, env := call(t, app, http.MethodPost, "/api/students", tokenForRole(t, entity.RoleAdmin), body)
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"id":"SV010"`)

	status, env = call(t, app, http.MethodPost, "/api/students", tokenForRole(t, entity.RoleAdmin),
		`{"id":"sv011","full_name":"X","enrollment_year":2025,"password":"corto"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)
}

func TestStudents_DuplicadoRetorna409(t *testing.T) {
	app, envs := newRouterApp(t)
	envs.students.err = domain.ErrDuplicate
	status, env := call(t, app, http.MethodPost, "/api/students", tokenForRole(t, entity.RoleAdmin),
		`{"id":"sv010","full_name":"Luis Mora","enrollment_year":2025,"password":"secreto123"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", env.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Matrícula y notas
// ──────────────────────────────────────────────────────────────────────────────

func TestEnroll_ErroresDeProcedimiento(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{domain.ErrSectionFull, "SECTION_FULL"},
		{domain.ErrAlreadyEnrolled, "ALREADY_ENROLLED"},
		{domain.ErrScheduleConflict, "SCHEDULE_CONFLICT"},
		{domain.ErrEnrollmentClosed, "ENROLLMENT_CLOSED"},
	}
	for _, tt := range tests {
		app, envs := newRouterApp(t)
		envs.enrollments.enrollErr = tt.err
		status, env := call(t, app, http.MethodPost, "/api/enrollments", studentToken(t, "SV001"), `{"section_id":"S1"}`)
		assert.Equal(t, http.StatusConflict, status, tt.code)
		assert.Equal(t, tt.code, env.Code)
	}
}

func TestEnroll_OK(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodPost, "/api/enrollments", studentToken(t, "SV001"), `{"section_id":"S1"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)
}

func TestEnroll_PersonalSinStudentID(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/enrollments", tokenForRole(t, entity.RoleAdmin), "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)

	status, _ = call(t, app, http.MethodGet, "/api/enrollments?student_id=SV001", tokenForRole(t, entity.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, status)
}

func TestSubmitGrades_DocenteNoAsignado(t *testing.T) {
	app, envs := newRouterApp(t)
	envs.grades.saveErr = domain.ErrNotSectionLecturer
	status, env := call(t, app, http.MethodPut, "/api/courses/S1/grades", tokenForRole(t, entity.RoleDocente),
		`{"entries":[{"student_id":"SV001","midterm":7,"final":8}]}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "NOT_SECTION_LECTURER", env.Code)
}

func TestSubmitGrades_NotaFueraDeRango(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodPut, "/api/courses/S1/grades", tokenForRole(t, entity.RoleDocente),
		`{"entries":[{"student_id":"SV001","midterm":11,"final":8}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)
}

func TestSubmitGrades_NotaAusenteRechazada(t *testing.T) {
	app, envs := newRouterApp(t)
	bodies := []string{
		`{"entries":[{"student_id":"SV001","final":8}]}`,
		`{"entries":[{"student_id":"SV001","midterm":7}]}`,
	}
	for _, body := range bodies {
		status, env := call(t, app, http.MethodPut, "/api/courses/S1/grades", tokenForRole(t, entity.RoleDocente), body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Equal(t, "VALIDATION", env.Code, body)
	}
	assert.Empty(t, envs.grades.saved)
}

func TestSubmitGrades_CeroExplicitoSeGraba(t *testing.T) {
	app, envs := newRouterApp(t)
	status, _ := call(t, app, http.MethodPut, "/api/courses/S1/grades", tokenForRole(t, entity.RoleDocente),
		`{"entries":[{"student_id":"SV001","midterm":0,"final":8}]}`)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, envs.grades.saved, 1)
	assert.True(t, envs.grades.saved[0].Midterm.IsZero())
	assert.Equal(t, "5.6", envs.grades.saved[0].Total.String())
}

func TestSubmitGrades_EstudianteBloqueado(t *testing.T) {
	app, _ := newRouterApp(t)
	status, _ := call(t, app, http.MethodPut, "/api/courses/S1/grades", studentToken(t, "SV001"),
		`{"entries":[{"student_id":"SV001","midterm":7,"final":8}]}`)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRoster_DocenteDeOtraSeccion(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/courses/S1/roster", tokenForRole(t, entity.RoleDocente), "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "NOT_SECTION_LECTURER", env.Code)
}

func TestGradesMe_PromedioPonderado(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/grades/me", studentToken(t, "SV001"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"gpa":"7.7"`)
	assert.Contains(t, string(env.Data), `"credits_earned":3`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos, certificados y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestPay_MontoNegativo(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodPost, "/api/tuition/payments", tokenForRole(t, entity.RoleTesoreria),
		`{"student_id":"SV001","amount":"-5"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)
}

func TestPay_OK(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodPost, "/api/tuition/payments", tokenForRole(t, entity.RoleTesoreria),
		`{"student_id":"SV001","amount":"200.50"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"reference":"REC-`)
}

func TestTuitionMe_SoloEstudiante(t *testing.T) {
	app, _ := newRouterApp(t)
	status, env := call(t, app, http.MethodGet, "/api/tuition/me", studentToken(t, "SV001"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"balance":"200"`)

	status, _ = call(t, app, http.MethodGet, "/api/tuition/me", tokenForRole(t, entity.RoleTesoreria), "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestTranscript_XMLVerificable(t *testing.T) {
	app, _ := newRouterApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/reports/transcripts/SV001.xml", nil)
	req.Header.Set("Authorization", studentToken(t, "SV001"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "certificado-SV001.xml")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	valid, err := transcriptxml.Verify(body)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestTranscript_FormatoYPermisos(t *testing.T) {
	app, _ := newRouterApp(t)

	status, env := call(t, app, http.MethodGet, "/api/reports/transcripts/SV001.txt", tokenForRole(t, entity.RoleAdmin), "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_FORMAT", env.Code)

	status, _ = call(t, app, http.MethodGet, "/api/reports/transcripts/SV002.pdf", studentToken(t, "SV001"), "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, app, http.MethodGet, "/api/reports/transcripts/SV001.pdf", tokenForRole(t, entity.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, status)
}

func TestReports_EstudianteBloqueado(t *testing.T) {
	app, _ := newRouterApp(t)
	status, _ := call(t, app, http.MethodGet, "/api/reports/summary", studentToken(t, "SV001"), "")
	assert.Equal(t, http.StatusForbidden, status)

	status, env := call(t, app, http.MethodGet, "/api/reports/summary", tokenForRole(t, entity.RoleTesoreria), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"semester":"2025-1"`)
}

func TestDashboard_SegunRol(t *testing.T) {
	app, _ := newRouterApp(t)

	status, env := call(t, app, http.MethodGet, "/api/dashboard", studentToken(t, "SV001"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"student"`)

	status, env = call(t, app, http.MethodGet, "/api/dashboard", tokenForRole(t, entity.RoleAdmin), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"summary"`)
}
