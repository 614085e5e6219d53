// migrate aplica el esquema versionado (goose) a la base primaria y a cada servidor
// de departamento listado en v_department_directory.
//
// Uso: go run ./cmd/migrate [up|down|status] [primary|departments]
// Sin segundo argumento opera sobre ambos destinos: primero la primaria, luego los departamentos
// (down en orden inverso).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Academico-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Academico-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/Academico-api/pkg/config"
	"github.com/jhoicas/Academico-api/pkg/logger"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	command := args[0]
	target := "all"
	if len(args) > 1 {
		target = args[1]
	}
	if migrationOrder(command, target) == nil {
		fmt.Fprintf(os.Stderr, "destino desconocido: %s\n", target)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, step := range migrationOrder(command, target) {
		switch step {
		case targetPrimary:
			if err := run(ctx, command, cfg.DB.ConnectionString(), migrations.Primary, migrations.PrimaryDir); err != nil {
				log.Fatal().Err(err).Msg("migración de la base primaria")
			}
			log.Info().Str("command", command).Msg("base primaria lista")
		case targetDepartments:
			servers, err := departmentServers(ctx, cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("leer directorio de departamentos")
			}
			for _, server := range servers {
				dsn := cfg.Departments.ServerDSN(server, cfg.DB)
				if err := run(ctx, command, dsn, migrations.Department, migrations.DepartmentDir); err != nil {
					log.Fatal().Err(err).Str("server", server).Msg("migración de departamento")
				}
				log.Info().Str("command", command).Str("server", server).Msg("servidor de departamento listo")
			}
		}
	}
}

const (
	targetPrimary     = "primary"
	targetDepartments = "departments"
)

// migrationOrder destinos a procesar y su orden. El listado de departamentos sale de la vista
// de la primaria: up la crea antes de recorrerlos y down la elimina después.
func migrationOrder(command, target string) []string {
	switch target {
	case targetPrimary, targetDepartments:
		return []string{target}
	case "all":
		if command == "down" {
			return []string{targetDepartments, targetPrimary}
		}
		return []string{targetPrimary, targetDepartments}
	default:
		return nil
	}
}

func run(ctx context.Context, command, dsn string, fsys fs.FS, dir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	goose.SetBaseFS(fsys)
	switch command {
	case "up":
		return goose.UpContext(ctx, db, dir)
	case "down":
		return goose.DownContext(ctx, db, dir)
	case "status":
		return goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("comando desconocido: %s", command)
	}
}

// departmentServers devuelve los server_name distintos del directorio; varios departamentos
// pueden compartir servidor y se migran una sola vez.
func departmentServers(ctx context.Context, cfg *config.Config) ([]string, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB.ConnectionString(), postgres.PoolOptions{MaxConns: 2, Ping: true})
	if err != nil {
		return nil, err
	}
	registry, err := postgres.NewRegistry(pool, postgres.RegistryConfig{
		DSN:       func(server string) string { return cfg.Departments.ServerDSN(server, cfg.DB) },
		Factory:   postgres.PgxPoolFactory(1),
		CacheSize: cfg.Departments.CacheSize,
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer registry.Close()

	list, err := registry.Departments(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var servers []string
	for _, d := range list {
		key := strings.ToLower(strings.TrimSpace(d.ServerName))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		servers = append(servers, strings.TrimSpace(d.ServerName))
	}
	sort.Strings(servers)
	return servers, nil
}

func usage() {
	fmt.Println("Uso: migrate [comando] [destino]")
	fmt.Println("Comandos:")
	fmt.Println("  up      - Aplicar migraciones pendientes")
	fmt.Println("  down    - Revertir la última migración")
	fmt.Println("  status  - Mostrar estado de las migraciones")
	fmt.Println("Destinos:")
	fmt.Println("  primary      - Solo la base primaria (directorio)")
	fmt.Println("  departments  - Cada servidor de v_department_directory")
	fmt.Println("  (vacío)      - Ambos")
}
