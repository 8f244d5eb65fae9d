package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/utils"
)

// errInvalidCredentials is returned for every failed login so callers cannot probe accounts.
var errInvalidCredentials = apperrors.NewAppError(http.StatusUnauthorized, "invalid email or password", nil)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for audit fields.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount provisions a new account. The id is the next free integer.
func (s *accountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := requireAdmin(actor, "create accounts"); err != nil {
		return nil, err
	}
	creator := actor.AccountID
	return s.createAccount(ctx, req, &creator)
}

func (s *accountService) createAccount(ctx context.Context, req dto.CreateAccountRequest, createdBy *int) (*domain.Account, error) {
	if !req.Role.Valid() || req.Role == domain.RoleGuest {
		return nil, apperrors.NewValidationError("role", "role must be ADMIN or STAFF")
	}
	email := normalizeEmail(req.Email)

	existing, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil && !isNotFound(err) {
		s.LogError(ctx, err, "Failed to check account email")
		return nil, fmt.Errorf("failed to check account email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("an account with email %s already exists", email))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	account := domain.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Role:         req.Role,
		PasswordHash: &hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
			Version:       1,
		},
	}

	for attempt := 0; attempt < defaultIDAttempts; attempt++ {
		maxID, err := s.accountRepo.MaxID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read account sequence: %w", err)
		}
		account.AccountID = maxID + 1 + attempt

		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			s.LogInfo(ctx, "Account created", slog.Int("account_id", account.AccountID), slog.String("role", string(account.Role)))
			return &account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account")
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		// A concurrent insert may have taken the email rather than the id.
		if again, lookupErr := s.accountRepo.FindAccountByEmail(ctx, email); lookupErr == nil && again != nil {
			return nil, apperrors.NewConflictError(fmt.Sprintf("an account with email %s already exists", email))
		}
	}
	return nil, fmt.Errorf("%w: no free account id after %d attempts", apperrors.ErrIDGenerationExhausted, defaultIDAttempts)
}

// GetAccountByID returns a non-deleted account. Accounts may read themselves; Admin reads all.
func (s *accountService) GetAccountByID(ctx context.Context, actor domain.Actor, accountID int) (*domain.Account, error) {
	if actor.AccountID != accountID {
		if err := requireAdmin(actor, "view other accounts"); err != nil {
			return nil, err
		}
	}
	return s.load(ctx, accountID)
}

func (s *accountService) load(ctx context.Context, accountID int) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil && !isNotFound(err) {
		s.LogError(ctx, err, "Failed to load account", slog.Int("account_id", accountID))
		return nil, fmt.Errorf("failed to load account %d: %w", accountID, err)
	}
	if account == nil || account.IsDeleted {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %d not found", accountID))
	}
	return account, nil
}

// ListAccounts retrieves accounts matching search.
func (s *accountService) ListAccounts(ctx context.Context, actor domain.Actor, search string, page domain.Page) ([]domain.Account, error) {
	if err := requireAdmin(actor, "list accounts"); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, strings.TrimSpace(search), page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// UpdateAccount changes the role of an account.
func (s *accountService) UpdateAccount(ctx context.Context, actor domain.Actor, accountID int, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := requireAdmin(actor, "update accounts"); err != nil {
		return nil, err
	}
	if !req.Role.Valid() || req.Role == domain.RoleGuest {
		return nil, apperrors.NewValidationError("role", "role must be ADMIN or STAFF")
	}

	account, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.Role = req.Role
	s.touch(account, actor)

	if err := s.save(ctx, account); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account role updated", slog.Int("account_id", accountID), slog.String("role", string(req.Role)))
	return account, nil
}

// DeleteAccount soft deletes an account. Admins cannot delete themselves.
func (s *accountService) DeleteAccount(ctx context.Context, actor domain.Actor, accountID int) error {
	if err := requireAdmin(actor, "delete accounts"); err != nil {
		return err
	}
	if actor.AccountID == accountID {
		return apperrors.NewValidationFailedError("you cannot delete your own account")
	}

	account, err := s.load(ctx, accountID)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	deletedBy := actor.AccountID
	account.IsDeleted = true
	account.DeletedAt = &now
	account.DeletedBy = &deletedBy
	s.touch(account, actor)

	if err := s.save(ctx, account); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account soft deleted", slog.Int("account_id", accountID))
	return nil
}

// Authenticate verifies an email and password pair.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, normalizeEmail(email))
	if err != nil && !isNotFound(err) {
		s.LogError(ctx, err, "Failed to load account for login")
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil || account.IsDeleted || account.PasswordHash == nil {
		return nil, errInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, *account.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch on login", slog.Int("account_id", account.AccountID))
		return nil, errInvalidCredentials
	}
	return account, nil
}

// ResolveGoogleAccount matches by Google subject first, then by email, linking the subject on first use.
func (s *accountService) ResolveGoogleAccount(ctx context.Context, googleID, email, avatarURL string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByGoogleID(ctx, googleID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to load account by google id: %w", err)
	}

	if account == nil {
		account, err = s.accountRepo.FindAccountByEmail(ctx, normalizeEmail(email))
		if err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to load account by email: %w", err)
		}
		if account == nil || account.IsDeleted {
			s.LogWarn(ctx, "Google login for unknown account")
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "no account is registered for this Google identity", nil)
		}
		account.GoogleID = &googleID
		if avatarURL != "" {
			account.AvatarURL = avatarURL
		}
		account.LastUpdatedAt = s.now().UTC()
		if err := s.save(ctx, account); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Google identity linked", slog.Int("account_id", account.AccountID))
		return account, nil
	}

	if account.IsDeleted {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "account is disabled", nil)
	}
	return account, nil
}

// EnsureAdmin creates the bootstrap admin account when email is unused.
func (s *accountService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := s.accountRepo.FindAccountByEmail(ctx, normalizeEmail(email))
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}
	if existing != nil {
		return nil
	}
	_, err = s.createAccount(ctx, dto.CreateAccountRequest{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     domain.RoleAdmin,
	}, nil)
	return err
}

func (s *accountService) touch(account *domain.Account, actor domain.Actor) {
	by := actor.AccountID
	account.LastUpdatedAt = s.now().UTC()
	account.LastUpdatedBy = &by
}

// save persists a mutated account under optimistic locking.
func (s *accountService) save(ctx context.Context, account *domain.Account) error {
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to update account", slog.Int("account_id", account.AccountID))
		return fmt.Errorf("failed to update account %d: %w", account.AccountID, err)
	}
	account.Version++
	return nil
}
