package services

import (
	"context"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/dto"
)

// AccountReaderSvc defines read operations for system accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a non-deleted account.
	GetAccountByID(ctx context.Context, actor domain.Actor, accountID int) (*domain.Account, error)

	// ListAccounts retrieves accounts whose name or email contains search.
	ListAccounts(ctx context.Context, actor domain.Actor, search string, page domain.Page) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for system accounts
type AccountWriterSvc interface {
	// CreateAccount provisions a new account. Only Admin may call it.
	CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount changes the role of an account. Other fields are ignored.
	UpdateAccount(ctx context.Context, actor domain.Actor, accountID int, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount soft deletes an account.
	DeleteAccount(ctx context.Context, actor domain.Actor, accountID int) error
}

// AccountAuthSvc defines the credential checks used by the login flows
type AccountAuthSvc interface {
	// Authenticate verifies an email and password pair.
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)

	// ResolveGoogleAccount finds the account for a verified Google identity, linking it on first use.
	ResolveGoogleAccount(ctx context.Context, googleID, email, avatarURL string) (*domain.Account, error)

	// EnsureAdmin creates the bootstrap admin account when the email is unused.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountAuthSvc
}
