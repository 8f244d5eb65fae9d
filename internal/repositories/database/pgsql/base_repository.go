package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// errVersionMiss signals an UPDATE that matched no row inside a transaction.
var errVersionMiss = errors.New("no row matched id and version")

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// rowScanner is satisfied by pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// inTx runs fn in a transaction, committing when it returns nil.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// exists runs a SELECT EXISTS query.
func (r *BaseRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// maxID returns the highest value of an integer key column, soft-deleted rows included.
func (r *BaseRepository) maxID(ctx context.Context, table, column string) (int, error) {
	var maxID int
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s", column, table)
	if err := r.Pool.QueryRow(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max %s.%s: %w", table, column, err)
	}
	return maxID, nil
}

// versionMiss explains an UPDATE that matched no row: the row is gone or its version moved on.
func (r *BaseRepository) versionMiss(ctx context.Context, existsQuery string, id any, what string) error {
	found, err := r.exists(ctx, existsQuery, id)
	if err != nil {
		return fmt.Errorf("failed to check %s %v: %w", what, id, err)
	}
	if !found {
		return fmt.Errorf("%w: %s %v", apperrors.ErrNotFound, what, id)
	}
	return fmt.Errorf("%w: %s %v was modified concurrently", apperrors.ErrConflict, what, id)
}

// mapWriteError turns constraint violations into domain errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, what, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s references a missing row (%s)", apperrors.ErrValidation, what, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// pageClause renders LIMIT/OFFSET for page, binding values after the existing args.
func pageClause(page domain.Page, args []any) (string, []any) {
	var b strings.Builder
	if page.Limit > 0 {
		args = append(args, page.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if page.Offset > 0 {
		args = append(args, page.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}
