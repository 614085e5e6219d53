package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.CourseRepository = (*CourseRepo)(nil)

var sectionColumns = []string{
	"id", "course_code", "course_name", "credits", "semester", "lecturer_id", "lecturer_name",
	"capacity", "enrolled", "schedule", "room", "enrollment_open",
}

// CourseRepo secciones del departamento.
type CourseRepo struct {
	conn departmentConn
}

// NewCourseRepository construye el adaptador.
func NewCourseRepository(registry *Registry) *CourseRepo {
	return &CourseRepo{conn: registry}
}

func sectionQuery(f entity.SectionFilter) sq.SelectBuilder {
	q := psql.Select(sectionColumns...).From("v_course_sections")
	if f.Semester != "" {
		q = q.Where(sq.Eq{"semester": f.Semester})
	}
	if f.LecturerID != "" {
		q = q.Where(sq.Eq{"lecturer_id": f.LecturerID})
	}
	if f.CourseCode != "" {
		q = q.Where(sq.Eq{"course_code": f.CourseCode})
	}
	if f.OnlyOpen {
		q = q.Where(sq.Eq{"enrollment_open": true})
	}
	return q.OrderBy("course_code", "id")
}

// ListSections lista secciones con los filtros dados.
func (r *CourseRepo) ListSections(ctx context.Context, department string, f entity.SectionFilter) ([]entity.CourseSection, error) {
	return r.querySections(ctx, department, sectionQuery(f))
}

// GetSection obtiene una sección por ID.
func (r *CourseRepo) GetSection(ctx context.Context, department, sectionID string) (*entity.CourseSection, error) {
	list, err := r.querySections(ctx, department, psql.Select(sectionColumns...).
		From("v_course_sections").
		Where(sq.Eq{"id": sectionID}))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *CourseRepo) querySections(ctx context.Context, department string, q sq.SelectBuilder) ([]entity.CourseSection, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sections query: %w", err)
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.CourseSection
	for rows.Next() {
		var s entity.CourseSection
		if err := rows.Scan(
			&s.ID, &s.CourseCode, &s.CourseName, &s.Credits, &s.Semester, &s.LecturerID, &s.LecturerName,
			&s.Capacity, &s.Enrolled, &s.Schedule, &s.Room, &s.EnrollmentOpen,
		); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Roster llama sp_section_roster.
func (r *CourseRepo) Roster(ctx context.Context, department, sectionID string) ([]entity.RosterEntry, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT student_id, full_name, class_name, midterm, final, total, COALESCE(letter, '')
		FROM sp_section_roster($1)`
	rows, err := db.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("sp_section_roster: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.RosterEntry
	for rows.Next() {
		var e entity.RosterEntry
		if err := rows.Scan(&e.StudentID, &e.FullName, &e.ClassName, &e.Midterm, &e.Final, &e.Total, &e.Letter); err != nil {
			return nil, fmt.Errorf("scan roster: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
