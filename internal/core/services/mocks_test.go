package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

// --- Mock WorkflowRepository (articles, categories, tags) ---
type MockWorkflowRepository[T any, ID comparable] struct {
	mock.Mock
}

func (m *MockWorkflowRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	args := m.Called(ctx, id)
	var entity *T
	if args.Get(0) != nil {
		entity = args.Get(0).(*T)
	}
	return entity, args.Error(1)
}

func (m *MockWorkflowRepository[T, ID]) FindByIDForUpdate(ctx context.Context, id ID) (*T, error) {
	args := m.Called(ctx, id)
	var entity *T
	if args.Get(0) != nil {
		entity = args.Get(0).(*T)
	}
	return entity, args.Error(1)
}

func (m *MockWorkflowRepository[T, ID]) Query(ctx context.Context, predicate workflow.Predicate, page domain.Page) ([]T, error) {
	args := m.Called(ctx, predicate, page)
	var items []T
	if args.Get(0) != nil {
		items = args.Get(0).([]T)
	}
	return items, args.Error(1)
}

func (m *MockWorkflowRepository[T, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkflowRepository[T, ID]) Create(ctx context.Context, entity T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockWorkflowRepository[T, ID]) Update(ctx context.Context, entity T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockWorkflowRepository[T, ID]) MaxID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByGoogleID(ctx context.Context, googleID string) (*domain.Account, error) {
	args := m.Called(ctx, googleID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, search string, page domain.Page) ([]domain.Account, error) {
	args := m.Called(ctx, search, page)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) AccountExists(ctx context.Context, accountID int) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) MaxID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CountByStatus(ctx context.Context, kind domain.Kind, createdBy *int, r domain.ReportRange) (domain.StatusCounts, error) {
	args := m.Called(ctx, kind, createdBy, r)
	var counts domain.StatusCounts
	if args.Get(0) != nil {
		counts = args.Get(0).(domain.StatusCounts)
	}
	return counts, args.Error(1)
}

func (m *MockReportingRepository) ArticlesByCategory(ctx context.Context, r domain.ReportRange) ([]domain.CategoryReportRow, error) {
	args := m.Called(ctx, r)
	var rows []domain.CategoryReportRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CategoryReportRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) ArticlesByAuthor(ctx context.Context, r domain.ReportRange) ([]domain.AuthorReportRow, error) {
	args := m.Called(ctx, r)
	var rows []domain.AuthorReportRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.AuthorReportRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) ArticleTimeSeries(ctx context.Context, g domain.Granularity, r domain.ReportRange) ([]domain.TimeBucket, error) {
	args := m.Called(ctx, g, r)
	var buckets []domain.TimeBucket
	if args.Get(0) != nil {
		buckets = args.Get(0).([]domain.TimeBucket)
	}
	return buckets, args.Error(1)
}

func (m *MockReportingRepository) TopTagNames(ctx context.Context, r domain.ReportRange, limit int) ([]string, error) {
	args := m.Called(ctx, r, limit)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	return names, args.Error(1)
}

// --- Mock Completer ---
type MockCompleter struct {
	mock.Mock
	enabled bool
}

func (m *MockCompleter) Enabled() bool { return m.enabled }

func (m *MockCompleter) Complete(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	args := m.Called(ctx, prompt, wantJSON)
	return args.String(0), args.Error(1)
}

// --- fixtures ---

var (
	admin  = domain.Actor{Role: domain.RoleAdmin, AccountID: 1}
	staff  = domain.Actor{Role: domain.RoleStaff, AccountID: 7}
	other  = domain.Actor{Role: domain.RoleStaff, AccountID: 8}
	guest  = domain.GuestActor
	ctxBg  = context.Background()
	anyCtx = mock.Anything
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func statusPtr(s domain.Status) *domain.Status { return &s }

func boolPtr(b bool) *bool { return &b }
