package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Academico-api/internal/application/analytics"
	"github.com/jhoicas/Academico-api/internal/application/auth"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	"github.com/jhoicas/Academico-api/internal/domain/access"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DepartmentUC *usecase.DepartmentUseCase
	StudentUC    *usecase.StudentUseCase
	CourseUC     *usecase.CourseUseCase
	GradeUC      *usecase.GradeUseCase
	EnrollmentUC *usecase.EnrollmentUseCase
	TuitionUC    *usecase.TuitionUseCase
	ReportUC     *usecase.ReportUseCase
	TranscriptUC *usecase.TranscriptUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", authMW, authHandler.Me)
	api.Put("/auth/password", authMW, authHandler.ChangePassword)

	// Tabla de acceso
	accessHandler := NewAccessHandler()
	accessGroup := api.Group("/access", authMW)
	accessGroup.Get("/pages", accessHandler.Pages)
	accessGroup.Get("/pages/:page", accessHandler.CheckPage)

	// Departamentos: el listado es público (pantalla de login)
	deptHandler := NewDepartmentHandler(deps.DepartmentUC)
	api.Get("/departments", deptHandler.List)
	api.Get("/departments/:name", authMW, RequirePage(access.PageDepartments), deptHandler.Resolve)

	// Estudiantes
	studentHandler := NewStudentHandler(deps.StudentUC)
	students := api.Group("/students", authMW)
	students.Get("/", RequirePage(access.PageStudents), studentHandler.List)
	students.Get("/:id", studentHandler.GetByID)
	students.Post("/", RequireRole(entity.RoleAdmin), studentHandler.Create)
	students.Put("/:id", RequireRole(entity.RoleAdmin), studentHandler.Update)

	// Cursos y carga de notas
	courseHandler := NewCourseHandler(deps.CourseUC, deps.GradeUC)
	courses := api.Group("/courses", authMW)
	courses.Get("/", RequirePage(access.PageCourses), courseHandler.List)
	courses.Get("/:id/roster", RequirePage(access.PageGrading), courseHandler.Roster)
	courses.Put("/:id/grades",
		RequireRole(entity.RoleDocente, entity.RoleAdmin),
		RequirePage(access.PageGrading),
		courseHandler.SubmitGrades,
	)

	// Matrícula
	enrollmentHandler := NewEnrollmentHandler(deps.EnrollmentUC)
	enrollments := api.Group("/enrollments", authMW, RequirePage(access.PageEnrollment))
	enrollments.Get("/", enrollmentHandler.List)
	enrollments.Post("/", enrollmentHandler.Enroll)
	enrollments.Delete("/:sectionId", enrollmentHandler.Cancel)

	// Notas
	gradeHandler := NewGradeHandler(deps.GradeUC)
	grades := api.Group("/grades", authMW)
	grades.Get("/me", RequireRole(entity.RoleEstudiante), RequirePage(access.PageMyGrades), gradeHandler.Me)
	grades.Get("/students/:id", gradeHandler.Student)

	// Matrícula financiera
	tuitionHandler := NewTuitionHandler(deps.TuitionUC)
	tuition := api.Group("/tuition", authMW)
	tuition.Get("/me", RequireRole(entity.RoleEstudiante), RequirePage(access.PageTuition), tuitionHandler.Me)
	tuition.Get("/students/:id", tuitionHandler.Student)
	tuition.Post("/payments", RequirePage(access.PagePayments), tuitionHandler.Pay)
	tuition.Get("/payments", RequirePage(access.PagePayments), tuitionHandler.ListPayments)

	// Reportes. Los certificados los puede bajar también el propio estudiante.
	reportHandler := NewReportHandler(deps.ReportUC, deps.TranscriptUC)
	reports := api.Group("/reports", authMW)
	reports.Get("/summary", RequirePage(access.PageReports), reportHandler.Summary)
	reports.Get("/courses", RequirePage(access.PageReports), reportHandler.CourseStats)
	reports.Get("/debtors", RequirePage(access.PageReports), reportHandler.Debtors)
	reports.Get("/transcripts/:file", reportHandler.Transcript)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", authMW, RequirePage(access.PageDashboard), dashboardHandler.GetSummary)
}
