package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Academico-api/internal/domain/repository"
)

var _ repository.GradeTxRunner = (*TxRunner)(nil)

type txBeginner interface {
	Begin(ctx context.Context, department string) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción en el servidor del departamento.
type TxRunner struct {
	db txBeginner
}

// NewTxRunner construye el runner sobre el Registry.
func NewTxRunner(registry *Registry) *TxRunner {
	return &TxRunner{db: registry}
}

// Run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, department string, fn func(tx DBTX) error) error {
	tx, err := r.db.Begin(ctx, department)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapDBError(err))
	}
	return nil
}

// RunGrades ejecuta fn con un GradeRepository atado a la transacción.
func (r *TxRunner) RunGrades(ctx context.Context, department string, fn func(repo repository.GradeRepository) error) error {
	return r.Run(ctx, department, func(tx DBTX) error {
		return fn(NewGradeRepository(txConn{tx: tx}))
	})
}

// txConn enruta cualquier departamento a la transacción en curso.
type txConn struct {
	tx DBTX
}

func (c txConn) ForDepartment(context.Context, string) (DBTX, error) { return c.tx, nil }
