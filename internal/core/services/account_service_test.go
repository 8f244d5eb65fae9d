package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/services"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/utils"
)

type AccountServiceTestSuite struct {
	suite.Suite
	repo    *MockAccountRepository
	now     time.Time
	service portssvc.AccountSvcFacade
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.repo = new(MockAccountRepository)
	s.now = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.service = services.NewAccountService(s.repo, services.WithAccountClock(func() time.Time { return s.now }))
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) account(id int, email, password string) *domain.Account {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	return &domain.Account{
		AccountID:    id,
		Name:         "Reporter",
		Email:        email,
		Role:         domain.RoleStaff,
		PasswordHash: &hash,
		AuditFields:  domain.AuditFields{Version: 1},
	}
}

func createRequest() dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Name:     "  Jo Reporter ",
		Email:    " Jo@Example.com ",
		Password: "correct-horse",
		Role:     domain.RoleStaff,
	}
}

func (s *AccountServiceTestSuite) TestCreateAccount() {
	s.repo.On("FindAccountByEmail", anyCtx, "jo@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.repo.On("MaxID", anyCtx).Return(3, nil).Once()
	s.repo.On("SaveAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == 4 && a.Email == "jo@example.com" && a.Name == "Jo Reporter" &&
			a.PasswordHash != nil && *a.CreatedBy == admin.AccountID && a.CreatedAt.Equal(s.now)
	})).Return(nil).Once()

	created, err := s.service.CreateAccount(ctxBg, admin, createRequest())

	s.Require().NoError(err)
	s.Equal(4, created.AccountID)
	s.True(utils.CheckPasswordHash("correct-horse", *created.PasswordHash))
}

func (s *AccountServiceTestSuite) TestCreateAccount_StaffForbidden() {
	_, err := s.service.CreateAccount(ctxBg, staff, createRequest())
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AccountServiceTestSuite) TestCreateAccount_GuestRoleRejected() {
	req := createRequest()
	req.Role = domain.RoleGuest

	_, err := s.service.CreateAccount(ctxBg, admin, req)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateAccount_EmailTaken() {
	s.repo.On("FindAccountByEmail", anyCtx, "jo@example.com").Return(s.account(2, "jo@example.com", "x"), nil).Once()

	_, err := s.service.CreateAccount(ctxBg, admin, createRequest())

	s.ErrorIs(err, apperrors.ErrConflict)
	s.repo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccount_RetriesIDCollision() {
	s.repo.On("FindAccountByEmail", anyCtx, "jo@example.com").Return(nil, apperrors.ErrNotFound).Twice()
	s.repo.On("MaxID", anyCtx).Return(3, nil).Twice()
	s.repo.On("SaveAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool { return a.AccountID == 4 })).Return(apperrors.ErrDuplicate).Once()
	s.repo.On("SaveAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool { return a.AccountID == 5 })).Return(nil).Once()

	created, err := s.service.CreateAccount(ctxBg, admin, createRequest())

	s.Require().NoError(err)
	s.Equal(5, created.AccountID)
}

func (s *AccountServiceTestSuite) TestGetAccountByID() {
	s.repo.On("FindAccountByID", anyCtx, staff.AccountID).Return(s.account(staff.AccountID, "me@example.com", "x"), nil).Once()

	got, err := s.service.GetAccountByID(ctxBg, staff, staff.AccountID)
	s.Require().NoError(err)
	s.Equal(staff.AccountID, got.AccountID)

	_, err = s.service.GetAccountByID(ctxBg, staff, other.AccountID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	deleted := s.account(other.AccountID, "gone@example.com", "x")
	deleted.IsDeleted = true
	s.repo.On("FindAccountByID", anyCtx, other.AccountID).Return(deleted, nil).Once()
	_, err = s.service.GetAccountByID(ctxBg, admin, other.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestListAccounts() {
	s.repo.On("ListAccounts", anyCtx, "jo", domain.Page{Limit: 20}).Return(nil, nil).Once()

	accounts, err := s.service.ListAccounts(ctxBg, admin, " jo ", domain.Page{Limit: 20})

	s.Require().NoError(err)
	s.NotNil(accounts)
	s.Empty(accounts)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_ChangesRole() {
	s.repo.On("FindAccountByID", anyCtx, 5).Return(s.account(5, "a@example.com", "x"), nil).Once()
	s.repo.On("UpdateAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Role == domain.RoleAdmin && *a.LastUpdatedBy == admin.AccountID
	})).Return(nil).Once()

	updated, err := s.service.UpdateAccount(ctxBg, admin, 5, dto.UpdateAccountRequest{Role: domain.RoleAdmin})

	s.Require().NoError(err)
	s.Equal(domain.RoleAdmin, updated.Role)
	s.Equal(int64(2), updated.Version)
}

func (s *AccountServiceTestSuite) TestDeleteAccount() {
	err := s.service.DeleteAccount(ctxBg, admin, admin.AccountID)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.repo.On("FindAccountByID", anyCtx, 5).Return(s.account(5, "a@example.com", "x"), nil).Once()
	s.repo.On("UpdateAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool {
		return a.IsDeleted && *a.DeletedBy == admin.AccountID && a.DeletedAt.Equal(s.now)
	})).Return(nil).Once()

	s.NoError(s.service.DeleteAccount(ctxBg, admin, 5))
}

func (s *AccountServiceTestSuite) TestAuthenticate() {
	s.repo.On("FindAccountByEmail", anyCtx, "jo@example.com").Return(s.account(4, "jo@example.com", "correct-horse"), nil)

	account, err := s.service.Authenticate(ctxBg, "JO@example.com", "correct-horse")
	s.Require().NoError(err)
	s.Equal(4, account.AccountID)

	_, err = s.service.Authenticate(ctxBg, "jo@example.com", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	s.repo.On("FindAccountByEmail", anyCtx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()
	_, err = s.service.Authenticate(ctxBg, "nobody@example.com", "correct-horse")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AccountServiceTestSuite) TestResolveGoogleAccount_LinksByEmail() {
	s.repo.On("FindAccountByGoogleID", anyCtx, "g-123").Return(nil, apperrors.ErrNotFound).Once()
	s.repo.On("FindAccountByEmail", anyCtx, "jo@example.com").Return(s.account(4, "jo@example.com", "x"), nil).Once()
	s.repo.On("UpdateAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool {
		return a.GoogleID != nil && *a.GoogleID == "g-123" && a.AvatarURL == "https://img/jo.png"
	})).Return(nil).Once()

	account, err := s.service.ResolveGoogleAccount(ctxBg, "g-123", "Jo@Example.com", "https://img/jo.png")

	s.Require().NoError(err)
	s.Equal(4, account.AccountID)
}

func (s *AccountServiceTestSuite) TestResolveGoogleAccount_UnknownIdentity() {
	s.repo.On("FindAccountByGoogleID", anyCtx, "g-404").Return(nil, apperrors.ErrNotFound).Once()
	s.repo.On("FindAccountByEmail", anyCtx, "stranger@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.ResolveGoogleAccount(ctxBg, "g-404", "stranger@example.com", "")

	s.ErrorIs(err, apperrors.ErrUnauthorized)
	var appErr *apperrors.AppError
	s.True(errors.As(err, &appErr))
}

func (s *AccountServiceTestSuite) TestEnsureAdmin() {
	s.NoError(s.service.EnsureAdmin(ctxBg, "", ""))

	s.repo.On("FindAccountByEmail", anyCtx, "root@example.com").Return(s.account(1, "root@example.com", "x"), nil).Once()
	s.NoError(s.service.EnsureAdmin(ctxBg, "root@example.com", "secret-pass"))

	s.repo.On("FindAccountByEmail", anyCtx, "boot@example.com").Return(nil, apperrors.ErrNotFound).Twice()
	s.repo.On("MaxID", anyCtx).Return(0, nil).Once()
	s.repo.On("SaveAccount", anyCtx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == 1 && a.Role == domain.RoleAdmin && a.CreatedBy == nil
	})).Return(nil).Once()
	s.NoError(s.service.EnsureAdmin(ctxBg, "boot@example.com", "secret-pass"))
}
