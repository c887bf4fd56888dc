package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// works the same way inside and outside a transaction.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (pgx.Tx)(nil)
)

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB DBTX
}

// inTx runs fn in a transaction nested under r.DB. On a pool this opens a real
// transaction; on a pgx.Tx it becomes a savepoint.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewInternalError("failed to commit transaction", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Default().Error("failed to rollback transaction", slog.String("error", err.Error()))
	}
}

// mapError turns driver errors into the application's error taxonomy.
func mapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, what, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s is still referenced (%s)", apperrors.ErrInvalidState, what, pgErr.ConstraintName)
		case "23514": // check_violation
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrValidation, what, pgErr.ConstraintName)
		}
	}
	return apperrors.NewInternalError(what, err)
}

type txKey struct{}

// PgxTransactionManager implements portsrepo.TransactionManager on a pgx pool.
type PgxTransactionManager struct {
	pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// NewTransactionManager creates a transaction manager for the pool.
func NewTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{pool: pool}
}

// WithTx implements portsrepo.TransactionManager.
func (m *PgxTransactionManager) WithTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx, NewRepositoryProvider(tx))
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx, NewRepositoryProvider(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewInternalError("failed to commit transaction", err)
	}
	return nil
}
