package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.StudentRepository = (*StudentRepo)(nil)

// psql constructor de SQL con placeholders $n.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var studentColumns = []string{
	"id", "full_name", "email", "phone", "class_name", "major", "enrollment_year", "date_of_birth", "status",
}

// StudentRepo fichas de estudiantes del departamento.
type StudentRepo struct {
	conn departmentConn
}

// NewStudentRepository construye el adaptador.
func NewStudentRepository(registry *Registry) *StudentRepo {
	return &StudentRepo{conn: registry}
}

// likeEscaper la búsqueda es literal: % y _ no actúan como comodines (escape por defecto de LIKE: \).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// studentFilterWhere arma el WHERE del listado; sin filtros queda (1=1).
func studentFilterWhere(f entity.StudentFilter) sq.And {
	where := sq.And{}
	if f.Search != "" {
		term := likeEscaper.Replace(f.Search)
		where = append(where, sq.Or{
			sq.ILike{"full_name": "%" + term + "%"},
			sq.ILike{"id": term + "%"},
		})
	}
	if f.ClassName != "" {
		where = append(where, sq.Eq{"class_name": f.ClassName})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": f.Status})
	}
	return where
}

// buildStudentList devuelve el SELECT paginado y el COUNT del mismo filtro.
func buildStudentList(f entity.StudentFilter) (listSQL string, listArgs []any, countSQL string, countArgs []any, err error) {
	where := studentFilterWhere(f)
	listSQL, listArgs, err = psql.Select(studentColumns...).
		From("v_students").
		Where(where).
		OrderBy("id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return "", nil, "", nil, err
	}
	countSQL, countArgs, err = psql.Select("COUNT(*)").From("v_students").Where(where).ToSql()
	return listSQL, listArgs, countSQL, countArgs, err
}

// List lista estudiantes con filtros y paginación.
func (r *StudentRepo) List(ctx context.Context, department string, f entity.StudentFilter) ([]entity.Student, int, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, 0, err
	}
	listSQL, listArgs, countSQL, countArgs, err := buildStudentList(f)
	if err != nil {
		return nil, 0, fmt.Errorf("build students query: %w", err)
	}

	var total int
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", mapDBError(err))
	}
	rows, err := db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", mapDBError(err))
	}
	defer rows.Close()
	list := make([]entity.Student, 0, f.Limit)
	for rows.Next() {
		var s entity.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("scan student: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// GetByID llama sp_get_student.
func (r *StudentRepo) GetByID(ctx context.Context, department, id string) (*entity.Student, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, full_name, email, phone, class_name, major, enrollment_year, date_of_birth, status
		FROM sp_get_student($1)`
	var s entity.Student
	if err := scanStudent(db.QueryRow(ctx, query, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sp_get_student: %w", mapDBError(err))
	}
	return &s, nil
}

// Create llama sp_create_student (ficha + cuenta de acceso).
func (r *StudentRepo) Create(ctx context.Context, department string, s *entity.Student, username, passwordHash string) error {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return err
	}
	query := `SELECT sp_create_student($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = db.Exec(ctx, query,
		s.ID, s.FullName, s.Email, s.Phone, s.ClassName, s.Major, s.EnrollmentYear, s.DateOfBirth,
		username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("sp_create_student: %w", mapDBError(err))
	}
	return nil
}

// Update llama sp_update_student.
func (r *StudentRepo) Update(ctx context.Context, department string, s *entity.Student) error {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return err
	}
	query := `SELECT sp_update_student($1, $2, $3, $4, $5, $6, $7)`
	_, err = db.Exec(ctx, query, s.ID, s.FullName, s.Email, s.Phone, s.ClassName, s.Major, s.Status)
	if err != nil {
		return fmt.Errorf("sp_update_student: %w", mapDBError(err))
	}
	return nil
}

func scanStudent(row pgx.Row, s *entity.Student) error {
	return row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.Phone, &s.ClassName, &s.Major, &s.EnrollmentYear, &s.DateOfBirth, &s.Status,
	)
}
