package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_management_app/internal/models"
	"github.com/SscSPs/news_management_app/internal/utils/mapping"
)

const accountSelect = `
	SELECT account_id, name, email, role, password_hash, google_id, avatar_url,
		created_at, created_by, last_updated_at, last_updated_by, version,
		is_deleted, deleted_at, deleted_by
	FROM accounts`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for system accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.Name, &m.Email, &m.Role, &m.PasswordHash, &m.GoogleID, &m.AvatarURL,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version,
		&m.IsDeleted, &m.DeletedAt, &m.DeletedBy,
	)
	return m, err
}

func (r *PgxAccountRepository) findOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, accountSelect+" WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %v", apperrors.ErrNotFound, arg)
		}
		return nil, fmt.Errorf("failed to find account %v: %w", arg, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int) (*domain.Account, error) {
	return r.findOne(ctx, "account_id = $1", accountID)
}

// FindAccountByEmail retrieves an account by email, ignoring case.
func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "lower(email) = lower($1)", email)
}

// FindAccountByGoogleID retrieves the account linked to a Google subject.
func (r *PgxAccountRepository) FindAccountByGoogleID(ctx context.Context, googleID string) (*domain.Account, error) {
	return r.findOne(ctx, "google_id = $1", googleID)
}

// ListAccounts lists non-deleted accounts, optionally narrowed by a name or email fragment.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, search string, page domain.Page) ([]domain.Account, error) {
	query := accountSelect + " WHERE NOT is_deleted"
	var args []any
	if search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		query += " AND (name ILIKE $1 OR email ILIKE $1)"
	}
	limit, args := pageClause(page, args)
	query += " ORDER BY account_id" + limit

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// AccountExists reports whether the account id is taken.
func (r *PgxAccountRepository) AccountExists(ctx context.Context, accountID int) (bool, error) {
	found, err := r.exists(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE account_id = $1)", accountID)
	if err != nil {
		return false, fmt.Errorf("failed to check account %d: %w", accountID, err)
	}
	return found, nil
}

// MaxID returns the highest account id ever used.
func (r *PgxAccountRepository) MaxID(ctx context.Context) (int, error) {
	return r.maxID(ctx, "accounts", "account_id")
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, name, email, role, password_hash, google_id, avatar_url,
			created_at, created_by, last_updated_at, last_updated_by, version, is_deleted, deleted_at, deleted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.Email, m.Role, m.PasswordHash, m.GoogleID, m.AvatarURL,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
		m.IsDeleted, m.DeletedAt, m.DeletedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("account %d", m.AccountID))
	}
	return nil
}

// UpdateAccount persists profile, role, credentials and soft delete fields when the version matches.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $1, email = $2, role = $3, password_hash = $4, google_id = $5, avatar_url = $6,
			last_updated_at = $7, last_updated_by = $8, is_deleted = $9, deleted_at = $10, deleted_by = $11,
			version = version + 1
		WHERE account_id = $12 AND version = $13`

	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Email, m.Role, m.PasswordHash, m.GoogleID, m.AvatarURL,
		m.LastUpdatedAt, m.LastUpdatedBy, m.IsDeleted, m.DeletedAt, m.DeletedBy,
		m.AccountID, m.Version,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("account %d", m.AccountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return r.versionMiss(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE account_id = $1)", m.AccountID, "account")
	}
	return nil
}
