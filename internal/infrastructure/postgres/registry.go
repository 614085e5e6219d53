package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
	"github.com/jhoicas/Academico-api/pkg/textnorm"
)

var _ repository.DepartmentDirectory = (*Registry)(nil)

// Métricas del enrutamiento por departamento.
var (
	poolsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "academico_department_pools_open",
		Help: "Pools de conexión abiertos hacia servidores de departamento.",
	})
	poolCreations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academico_department_pool_creations_total",
		Help: "Intentos de creación de pools de departamento por resultado.",
	}, []string{"result"})
	directoryLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academico_directory_lookups_total",
		Help: "Resoluciones de departamento por resultado de caché (hit|miss).",
	}, []string{"cache"})
)

const directoryQuery = `SELECT branch_name, server_name FROM v_department_directory ORDER BY branch_name`

// PoolFactory crea el pool de un servidor a partir de su DSN.
type PoolFactory func(ctx context.Context, dsn string) (Pool, error)

// DirectorySource origen de las filas del directorio.
type DirectorySource interface {
	LoadDirectory(ctx context.Context) ([]entity.Department, error)
}

// RegistryConfig dependencias del Registry.
type RegistryConfig struct {
	DSN       func(server string) string
	Factory   PoolFactory
	Directory DirectorySource // nil: v_department_directory en la base primaria
	CacheSize int
	CacheTTL  time.Duration // 0: sin expiración
}

// Registry enruta cada departamento a su servidor y mantiene un pool por server_name,
// creado en el primer uso y reutilizado hasta Close. El pool primario atiende el directorio.
type Registry struct {
	primary   Pool
	dsn       func(server string) string
	factory   PoolFactory
	directory DirectorySource
	cache     *expirable.LRU[string, entity.Department]

	mu     sync.Mutex
	pools  map[string]Pool
	closed bool
}

// NewRegistry construye el registro. El Registry pasa a ser dueño del pool primario.
func NewRegistry(primary Pool, cfg RegistryConfig) (*Registry, error) {
	if primary == nil {
		return nil, errors.New("registry: pool primario requerido")
	}
	if cfg.DSN == nil || cfg.Factory == nil {
		return nil, errors.New("registry: DSN y Factory son obligatorios")
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 256
	}
	dir := cfg.Directory
	if dir == nil {
		dir = primaryDirectory{db: primary}
	}
	return &Registry{
		primary:   primary,
		dsn:       cfg.DSN,
		factory:   cfg.Factory,
		directory: dir,
		cache:     expirable.NewLRU[string, entity.Department](size, nil, cfg.CacheTTL),
		pools:     make(map[string]Pool),
	}, nil
}

// Primary devuelve el pool primario.
func (r *Registry) Primary() DBTX { return r.primary }

// PingPrimary verifica la base primaria (health check).
func (r *Registry) PingPrimary(ctx context.Context) error {
	return r.primary.Ping(ctx)
}

// Departments lee el directorio completo y refresca la caché con cada fila.
func (r *Registry) Departments(ctx context.Context) ([]entity.Department, error) {
	list, err := r.directory.LoadDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar directorio: %w", mapDBError(err))
	}
	for _, d := range list {
		r.cache.Add(textnorm.Fold(d.BranchName), d)
	}
	return list, nil
}

// Resolve traduce el nombre lógico (sin distinguir mayúsculas ni tildes) a su fila del directorio.
func (r *Registry) Resolve(ctx context.Context, name string) (entity.Department, error) {
	key := textnorm.Fold(name)
	if key == "" {
		return entity.Department{}, fmt.Errorf("%w: department es requerido", domain.ErrInvalidInput)
	}
	if d, ok := r.cache.Get(key); ok {
		directoryLookups.WithLabelValues("hit").Inc()
		return d, nil
	}
	directoryLookups.WithLabelValues("miss").Inc()

	list, err := r.Departments(ctx)
	if err != nil {
		return entity.Department{}, err
	}
	for _, d := range list {
		if textnorm.Fold(d.BranchName) == key {
			return d, nil
		}
	}
	return entity.Department{}, fmt.Errorf("%w: %q", domain.ErrDepartmentNotFound, name)
}

// ForDepartment devuelve el pool del servidor que atiende al departamento.
func (r *Registry) ForDepartment(ctx context.Context, department string) (DBTX, error) {
	return r.departmentPool(ctx, department)
}

// Begin abre una transacción en el servidor del departamento.
func (r *Registry) Begin(ctx context.Context, department string) (pgx.Tx, error) {
	pool, err := r.departmentPool(ctx, department)
	if err != nil {
		return nil, err
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", mapDBError(err))
	}
	return tx, nil
}

func (r *Registry) departmentPool(ctx context.Context, department string) (Pool, error) {
	d, err := r.Resolve(ctx, department)
	if err != nil {
		return nil, err
	}
	return r.Pool(ctx, d.ServerName)
}

// Pool devuelve el pool del servidor, creándolo si es el primer uso.
// Dos departamentos en el mismo servidor comparten pool.
func (r *Registry) Pool(ctx context.Context, server string) (Pool, error) {
	server = strings.TrimSpace(server)
	key := strings.ToLower(server)
	if key == "" {
		return nil, fmt.Errorf("%w: server_name vacío en el directorio", domain.ErrDepartmentUnavailable)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, fmt.Errorf("%w: registro cerrado", domain.ErrDepartmentUnavailable)
	}
	if p, ok := r.pools[key]; ok {
		return p, nil
	}
	p, err := r.factory(ctx, r.dsn(server))
	if err != nil {
		poolCreations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDepartmentUnavailable, server, err)
	}
	r.pools[key] = p
	poolCreations.WithLabelValues("ok").Inc()
	poolsOpen.Inc()
	return p, nil
}

// OpenPools número de pools de departamento abiertos.
func (r *Registry) OpenPools() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pools)
}

// Close cierra todos los pools, incluido el primario. Solo para el apagado.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for key, p := range r.pools {
		p.Close()
		delete(r.pools, key)
		poolsOpen.Dec()
	}
	r.primary.Close()
	r.closed = true
}

// primaryDirectory lee v_department_directory en la base primaria.
type primaryDirectory struct {
	db DBTX
}

func (d primaryDirectory) LoadDirectory(ctx context.Context) ([]entity.Department, error) {
	rows, err := d.db.Query(ctx, directoryQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []entity.Department
	for rows.Next() {
		var dep entity.Department
		if err := rows.Scan(&dep.BranchName, &dep.ServerName); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, dep)
	}
	return list, rows.Err()
}
