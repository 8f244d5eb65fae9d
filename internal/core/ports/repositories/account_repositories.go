package repositories

import (
	"context"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// AccountReader defines read operations for system accounts.
type AccountReader interface {
	// FindAccountByID retrieves an account, soft-deleted ones included.
	FindAccountByID(ctx context.Context, accountID int) (*domain.Account, error)

	// FindAccountByEmail retrieves an account by its (case-insensitive) email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// FindAccountByGoogleID retrieves an account linked to a Google subject.
	FindAccountByGoogleID(ctx context.Context, googleID string) (*domain.Account, error)

	// ListAccounts retrieves non-deleted accounts whose name or email contains search.
	ListAccounts(ctx context.Context, search string, page domain.Page) ([]domain.Account, error)

	// AccountExists reports whether the id is taken, soft-deleted rows included.
	AccountExists(ctx context.Context, accountID int) (bool, error)

	SequenceReader
}

// AccountWriter defines write operations for system accounts.
type AccountWriter interface {
	// SaveAccount inserts a new account. Duplicate id or email yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists role, profile, Google link and soft delete fields.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
