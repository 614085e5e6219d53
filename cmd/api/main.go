package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Academico-api/docs"
	appanalytics "github.com/jhoicas/Academico-api/internal/application/analytics"
	"github.com/jhoicas/Academico-api/internal/application/auth"
	"github.com/jhoicas/Academico-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Academico-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Academico-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Academico-api/internal/infrastructure/transcriptxml"
	httpRouter "github.com/jhoicas/Academico-api/internal/interfaces/http"
	"github.com/jhoicas/Academico-api/pkg/config"
	"github.com/jhoicas/Academico-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("semester", cfg.Academic.CurrentSemester).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	primary, err := postgres.NewPool(ctx, cfg.DB.ConnectionString(), postgres.PoolOptions{
		MaxConns: cfg.DB.MaxConns,
		Ping:     true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base primaria")
	}

	// Un pool por servidor de departamento, creado en el primer uso.
	registry, err := postgres.NewRegistry(primary, postgres.RegistryConfig{
		DSN: func(server string) string {
			return cfg.Departments.ServerDSN(server, cfg.DB)
		},
		Factory:   postgres.PgxPoolFactory(cfg.Departments.MaxConns),
		CacheSize: cfg.Departments.CacheSize,
		CacheTTL:  cfg.Departments.CacheTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("registro de departamentos")
	}
	defer registry.Close()

	accountRepo := postgres.NewAccountRepository(registry)
	studentRepo := postgres.NewStudentRepository(registry)
	courseRepo := postgres.NewCourseRepository(registry)
	enrollmentRepo := postgres.NewEnrollmentRepository(registry)
	gradeRepo := postgres.NewGradeRepository(registry)
	tuitionRepo := postgres.NewTuitionRepository(registry)
	reportRepo := postgres.NewReportRepository(registry)
	txRunner := postgres.NewTxRunner(registry)

	semester := cfg.Academic.CurrentSemester
	authUC := auth.NewAuthUseCase(registry, accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	departmentUC := usecase.NewDepartmentUseCase(registry)
	studentUC := usecase.NewStudentUseCase(studentRepo)
	courseUC := usecase.NewCourseUseCase(courseRepo, semester)
	gradeUC := usecase.NewGradeUseCase(txRunner, gradeRepo, studentRepo)
	enrollmentUC := usecase.NewEnrollmentUseCase(enrollmentRepo, semester)
	tuitionUC := usecase.NewTuitionUseCase(tuitionRepo, semester)
	reportUC := usecase.NewReportUseCase(reportRepo, semester)
	dashboardUC := appanalytics.NewDashboardUseCase(enrollmentRepo, gradeRepo, tuitionRepo, reportRepo, semester)

	// Certificados: PDF (maroto) y XML con digest canónico (etree + c14n)
	transcriptUC := usecase.NewTranscriptUseCase(
		studentRepo, gradeRepo,
		infrapdf.NewMarotoTranscriptGenerator(),
		transcriptxml.NewBuilder(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Académico API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := registry.PingPrimary(pingCtx); err != nil {
			log.Error().Err(err).Msg("health: base primaria no responde")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "down", "service": cfg.App.Name,
			})
		}
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    cfg.App.Name,
			"open_pools": registry.OpenPools(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DepartmentUC: departmentUC,
		StudentUC:    studentUC,
		CourseUC:     courseUC,
		GradeUC:      gradeUC,
		EnrollmentUC: enrollmentUC,
		TuitionUC:    tuitionUC,
		ReportUC:     reportUC,
		TranscriptUC: transcriptUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
