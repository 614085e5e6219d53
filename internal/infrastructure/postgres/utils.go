package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Academico-api/internal/domain"
)

// SQLSTATE estándar que nos interesan.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
	sqlStateInvalidText         = "22P02"
)

// procedureErrors SQLSTATE propios que levantan los procedimientos del departamento
// con RAISE ... USING ERRCODE (ver migrations/department).
var procedureErrors = map[string]error{
	"SM001": domain.ErrSectionFull,
	"SM002": domain.ErrAlreadyEnrolled,
	"SM003": domain.ErrScheduleConflict,
	"SM004": domain.ErrEnrollmentClosed,
	"SM005": domain.ErrNotFound,
	"SM006": domain.ErrPaymentExceedsBalance,
	"SM007": domain.ErrNotSectionLecturer,
}

// mapDBError traduce errores del driver a errores de dominio. Los no reconocidos se devuelven tal cual.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if de, ok := procedureErrors[pgErr.Code]; ok {
			return de
		}
		switch pgErr.Code {
		case sqlStateUniqueViolation:
			return domain.ErrDuplicate
		case sqlStateForeignKeyViolation:
			return domain.ErrNotFound
		case sqlStateCheckViolation, sqlStateInvalidText:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
		}
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", domain.ErrDepartmentUnavailable, err)
	}
	return err
}
