package postgres_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

var errFakeDB = errors.New("fake pool: sin base de datos")

type fakePool struct {
	dsn    string
	closed atomic.Bool
}

func (p *fakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errFakeDB
}
func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, errFakeDB }
func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row      { return nil }
func (p *fakePool) Begin(context.Context) (pgx.Tx, error)                  { return nil, errFakeDB }
func (p *fakePool) Ping(context.Context) error                            { return nil }
func (p *fakePool) Close()                                                { p.closed.Store(true) }

type fakeDirectory struct {
	rows  []entity.Department
	err   error
	loads atomic.Int32
}

func (d *fakeDirectory) LoadDirectory(context.Context) ([]entity.Department, error) {
	d.loads.Add(1)
	return d.rows, d.err
}

type fakeFactory struct {
	mu      sync.Mutex
	created []*fakePool
	failFor map[string]bool
}

func (f *fakeFactory) build(_ context.Context, dsn string) (postgres.Pool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[dsn] {
		return nil, errors.New("connection refused")
	}
	p := &fakePool{dsn: dsn}
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func directory() *fakeDirectory {
	return &fakeDirectory{rows: []entity.Department{
		{BranchName: "Ingeniería", ServerName: "db-eng"},
		{BranchName: "Economía", ServerName: "db-shared"},
		{BranchName: "Derecho", ServerName: "DB-SHARED"},
	}}
}

func newRegistry(t *testing.T, dir *fakeDirectory, factory *fakeFactory) (*postgres.Registry, *fakePool) {
	t.Helper()
	primary := &fakePool{dsn: "primary"}
	reg, err := postgres.NewRegistry(primary, postgres.RegistryConfig{
		DSN:       func(server string) string { return "postgres://" + server + "/academico" },
		Factory:   factory.build,
		Directory: dir,
		CacheSize: 16,
	})
	require.NoError(t, err)
	return reg, primary
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_IgnoraMayusculasYTildes(t *testing.T) {
	dir := directory()
	reg, _ := newRegistry(t, dir, &fakeFactory{})

	d, err := reg.Resolve(context.Background(), "  INGENIERIA ")
	require.NoError(t, err)
	assert.Equal(t, "Ingeniería", d.BranchName)
	assert.Equal(t, "db-eng", d.ServerName)
}

func TestResolve_UsaCache(t *testing.T) {
	dir := directory()
	reg, _ := newRegistry(t, dir, &fakeFactory{})
	ctx := context.Background()

	_, err := reg.Resolve(ctx, "Economía")
	require.NoError(t, err)
	_, err = reg.Resolve(ctx, "economia")
	require.NoError(t, err)
	// La primera carga del directorio llena la caché con todas las filas.
	_, err = reg.Resolve(ctx, "Derecho")
	require.NoError(t, err)

	assert.Equal(t, int32(1), dir.loads.Load())
}

func TestResolve_NoEncontrado(t *testing.T) {
	reg, _ := newRegistry(t, directory(), &fakeFactory{})

	_, err := reg.Resolve(context.Background(), "Medicina")
	assert.True(t, errors.Is(err, domain.ErrDepartmentNotFound))
}

func TestResolve_NombreVacio(t *testing.T) {
	dir := directory()
	reg, _ := newRegistry(t, dir, &fakeFactory{})

	_, err := reg.Resolve(context.Background(), "   ")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, int32(0), dir.loads.Load())
}

func TestResolve_ErrorDirectorio(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("view missing")}
	reg, _ := newRegistry(t, dir, &fakeFactory{})

	_, err := reg.Resolve(context.Background(), "Ingeniería")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrDepartmentNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pools
// ──────────────────────────────────────────────────────────────────────────────

func TestForDepartment_ComparteConexionPorServidor(t *testing.T) {
	factory := &fakeFactory{}
	reg, _ := newRegistry(t, directory(), factory)
	ctx := context.Background()

	eco, err := reg.ForDepartment(ctx, "Economía")
	require.NoError(t, err)
	der, err := reg.ForDepartment(ctx, "Derecho")
	require.NoError(t, err)
	eng, err := reg.ForDepartment(ctx, "Ingeniería")
	require.NoError(t, err)

	assert.Same(t, eco, der, "db-shared y DB-SHARED son el mismo servidor")
	assert.NotSame(t, eco, eng)
	assert.Equal(t, 2, factory.count())
	assert.Equal(t, 2, reg.OpenPools())
	assert.Equal(t, "postgres://db-eng/academico", eng.(*fakePool).dsn)
}

func TestPool_CreacionConcurrenteUnaSolaVez(t *testing.T) {
	factory := &fakeFactory{}
	reg, _ := newRegistry(t, directory(), factory)

	var wg sync.WaitGroup
	results := make([]postgres.Pool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := reg.Pool(context.Background(), "db-eng")
			if err == nil {
				results[i] = p
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, factory.count())
	for _, p := range results {
		assert.Same(t, results[0], p)
	}
}

func TestPool_ErrorNoSeCachea(t *testing.T) {
	factory := &fakeFactory{failFor: map[string]bool{"postgres://db-eng/academico": true}}
	reg, _ := newRegistry(t, directory(), factory)
	ctx := context.Background()

	_, err := reg.ForDepartment(ctx, "Ingeniería")
	assert.True(t, errors.Is(err, domain.ErrDepartmentUnavailable))
	assert.Equal(t, 0, reg.OpenPools())

	factory.mu.Lock()
	factory.failFor = nil
	factory.mu.Unlock()

	_, err = reg.ForDepartment(ctx, "Ingeniería")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.OpenPools())
}

func TestClose_CierraTodosLosPools(t *testing.T) {
	factory := &fakeFactory{}
	reg, primary := newRegistry(t, directory(), factory)
	ctx := context.Background()

	_, err := reg.ForDepartment(ctx, "Ingeniería")
	require.NoError(t, err)
	_, err = reg.ForDepartment(ctx, "Economía")
	require.NoError(t, err)

	reg.Close()
	reg.Close()

	for _, p := range factory.created {
		assert.True(t, p.closed.Load())
	}
	assert.True(t, primary.closed.Load())
	assert.Equal(t, 0, reg.OpenPools())

	_, err = reg.Pool(ctx, "db-eng")
	assert.True(t, errors.Is(err, domain.ErrDepartmentUnavailable))
}

func TestNewRegistry_Validaciones(t *testing.T) {
	_, err := postgres.NewRegistry(nil, postgres.RegistryConfig{})
	assert.Error(t, err)

	_, err = postgres.NewRegistry(&fakePool{}, postgres.RegistryConfig{})
	assert.Error(t, err)
}

func TestDepartments_ListaDirectorio(t *testing.T) {
	reg, _ := newRegistry(t, directory(), &fakeFactory{})

	list, err := reg.Departments(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
