package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Academico-api/internal/domain/entity"
	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo procedimientos sp_report_*.
type ReportRepo struct {
	conn departmentConn
}

// NewReportRepository construye el adaptador.
func NewReportRepository(registry *Registry) *ReportRepo {
	return &ReportRepo{conn: registry}
}

// Summary totales del semestre.
func (r *ReportRepo) Summary(ctx context.Context, department, semester string) (*entity.DepartmentSummary, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT students, active_students, sections, enrollments, amount_due, amount_paid
		FROM sp_report_department_summary($1)`
	s := entity.DepartmentSummary{Semester: semester}
	err = db.QueryRow(ctx, query, semester).Scan(
		&s.Students, &s.ActiveStudents, &s.Sections, &s.Enrollments, &s.AmountDue, &s.AmountPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("sp_report_department_summary: %w", mapDBError(err))
	}
	return &s, nil
}

// CourseStats rendimiento por sección.
func (r *ReportRepo) CourseStats(ctx context.Context, department, semester string) ([]entity.CourseStat, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT section_id, course_code, course_name, lecturer_name, enrolled, graded, average, pass_rate
		FROM sp_report_course_stats($1)`
	rows, err := db.Query(ctx, query, semester)
	if err != nil {
		return nil, fmt.Errorf("sp_report_course_stats: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.CourseStat
	for rows.Next() {
		var c entity.CourseStat
		if err := rows.Scan(&c.SectionID, &c.CourseCode, &c.CourseName, &c.LecturerName,
			&c.Enrolled, &c.Graded, &c.Average, &c.PassRate); err != nil {
			return nil, fmt.Errorf("scan course stat: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Debtors estudiantes con saldo pendiente, de mayor a menor.
func (r *ReportRepo) Debtors(ctx context.Context, department, semester string) ([]entity.Debtor, error) {
	db, err := r.conn.ForDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT student_id, full_name, class_name, amount_due, amount_paid, balance
		FROM sp_report_debtors($1)`
	rows, err := db.Query(ctx, query, semester)
	if err != nil {
		return nil, fmt.Errorf("sp_report_debtors: %w", mapDBError(err))
	}
	defer rows.Close()
	var list []entity.Debtor
	for rows.Next() {
		var d entity.Debtor
		if err := rows.Scan(&d.StudentID, &d.FullName, &d.ClassName, &d.AmountDue, &d.AmountPaid, &d.Balance); err != nil {
			return nil, fmt.Errorf("scan debtor: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
