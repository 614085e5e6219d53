package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Academico-api/internal/domain"
	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.EnrollmentRepository = (*EnrollmentRepo)(nil)

const enrollmentColumns = `section_id, course_code, course_name, credits, semester, schedule, room, enrolled_at`

// EnrollmentRepo matrícula vía sp_enroll / sp_cancel_enrollment.
type EnrollmentRepo struct {
	conn departmentConn
}

// NewEnrollmentRepository construye el adaptador.
func NewEnrollmentRepository(registry *Registry) *EnrollmentRepo {
	return &EnrollmentRepo{conn: registry}
}

// ListByStudent llama sp_list_enrollments; semester vacío = todos.
func (r *EnrollmentRepo) ListByStudent(ctx context.Context, department, studentID, semester string) ([]entity.Enrollment, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `SELECT `+enrollmentColumns+` FROM sp_list_enrollments($1, $2)`, studentID, nullIfEmpty(semester))
	if err != nil {
		return nil, fmt.Errorf("sp_list_enrollments: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.Enrollment
	for rows.Next() {
		var e entity.Enrollment
		if err := scanEnrollment(rows, &e); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Enroll llama sp_enroll. Cupo, choque de horario y ventana de matrícula llegan como errores de dominio.
func (r *EnrollmentRepo) Enroll(ctx context.Context, department, studentID, sectionID string) (*entity.Enrollment, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	var e entity.Enrollment
	err = scanEnrollment(db.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM sp_enroll($1, $2)`, studentID, sectionID), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sp_enroll: %w", mapDBError(err))
	}
	return &e, nil
}

// Cancel llama sp_cancel_enrollment.
func (r *EnrollmentRepo) Cancel(ctx context.Context, department, studentID, sectionID string) error {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, `SELECT sp_cancel_enrollment($1, $2)`, studentID, sectionID); err != nil {
		return fmt.Errorf("sp_cancel_enrollment: %w", mapDBError(err))
	}
	return nil
}

func scanEnrollment(row pgx.Row, e *entity.Enrollment) error {
	return row.Scan(&e.SectionID, &e.CourseCode, &e.CourseName, &e.Credits, &e.Semester, &e.Schedule, &e.Room, &e.EnrolledAt)
}
