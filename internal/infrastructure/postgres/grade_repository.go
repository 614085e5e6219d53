package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.GradeRepository = (*GradeRepo)(nil)

// GradeRepo calificaciones vía sp_update_grade / sp_student_grades.
type GradeRepo struct {
	conn departmentConn
}

// NewGradeRepository construye el adaptador. conn es el Registry o una transacción (txConn).
func NewGradeRepository(conn departmentConn) *GradeRepo {
	return &GradeRepo{conn: conn}
}

// Save registra la nota ya calculada.
func (r *GradeRepo) Save(ctx context.Context, department, lecturerID string, g *entity.Grade) error {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return err
	}
	query := `SELECT sp_update_grade($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = db.Exec(ctx, query,
		g.SectionID, g.StudentID, nullIfEmpty(lecturerID),
		g.Midterm, g.Final, g.Total, g.Letter, g.Passed,
	)
	if err != nil {
		return fmt.Errorf("sp_update_grade %s/%s: %w", g.SectionID, g.StudentID, mapDBError(err))
	}
	return nil
}

// ListByStudent llama sp_student_grades (historial completo, ordenado por semestre).
func (r *GradeRepo) ListByStudent(ctx context.Context, department, studentID string) ([]entity.TranscriptLine, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT semester, course_code, course_name, credits, midterm, final, total, letter, passed
		FROM sp_student_grades($1)`
	rows, err := db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("sp_student_grades: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.TranscriptLine
	for rows.Next() {
		var l entity.TranscriptLine
		if err := rows.Scan(&l.Semester, &l.CourseCode, &l.CourseName, &l.Credits,
			&l.Midterm, &l.Final, &l.Total, &l.Letter, &l.Passed); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
