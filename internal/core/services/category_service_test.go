package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	repo    *MockWorkflowRepository[domain.Category, int]
	service portssvc.CategorySvcFacade
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.repo = new(MockWorkflowRepository[domain.Category, int])
	s.service = services.NewCategoryService(s.repo)
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func category(id int, parent *int, owner int, status domain.Status) *domain.Category {
	return &domain.Category{
		CategoryID:       id,
		Name:             "Category",
		ParentCategoryID: parent,
		WorkflowState: domain.WorkflowState{
			Status:      status,
			CreatedByID: owner,
			IsActive:    true,
			Version:     1,
		},
	}
}

func (s *CategoryServiceTestSuite) validationDetails(err error) map[string]string {
	var validationErr *apperrors.ValidationError
	s.Require().True(errors.As(err, &validationErr), "expected ValidationError, got %v", err)
	return validationErr.Details
}

func (s *CategoryServiceTestSuite) TestCreate_NextSequenceID() {
	s.repo.On("MaxID", anyCtx).Return(41, nil).Once()
	s.repo.On("Exists", anyCtx, 42).Return(false, nil).Once()
	s.repo.On("Create", anyCtx, mock.MatchedBy(func(c domain.Category) bool {
		return c.CategoryID == 42 && c.IsActive && c.Status == domain.StatusDraft
	})).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, domain.CategoryPayload{Name: strPtr("Sports")})

	s.Require().NoError(err)
	s.Equal(42, created.CategoryID)
	s.Equal("Sports", created.Name)
}

func (s *CategoryServiceTestSuite) TestCreate_SkipsTakenIDs() {
	s.repo.On("MaxID", anyCtx).Return(41, nil).Twice()
	s.repo.On("Exists", anyCtx, 42).Return(true, nil).Once()
	s.repo.On("Exists", anyCtx, 43).Return(false, nil).Once()
	s.repo.On("Create", anyCtx, mock.MatchedBy(func(c domain.Category) bool { return c.CategoryID == 43 })).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, domain.CategoryPayload{Name: strPtr("Sports")})

	s.Require().NoError(err)
	s.Equal(43, created.CategoryID)
}

func (s *CategoryServiceTestSuite) TestCreate_InactiveWhenRequested() {
	s.repo.On("MaxID", anyCtx).Return(0, nil).Once()
	s.repo.On("Exists", anyCtx, 1).Return(false, nil).Once()
	s.repo.On("Create", anyCtx, mock.MatchedBy(func(c domain.Category) bool { return !c.IsActive })).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, domain.CategoryPayload{Name: strPtr("Hidden"), IsActive: boolPtr(false)})

	s.Require().NoError(err)
	s.False(created.IsActive)
}

func (s *CategoryServiceTestSuite) TestCreate_AdminForbidden() {
	_, err := s.service.Create(ctxBg, admin, domain.CategoryPayload{Name: strPtr("Sports")})

	s.ErrorIs(err, apperrors.ErrForbidden)
	var denial *apperrors.DenialError
	s.Require().True(errors.As(err, &denial))
	s.Equal(apperrors.ReasonRole, denial.Reason)
}

func (s *CategoryServiceTestSuite) TestCreate_NameTooLong() {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	_, err := s.service.Create(ctxBg, staff, domain.CategoryPayload{Name: strPtr(string(long))})

	s.Contains(s.validationDetails(err), "name")
}

func (s *CategoryServiceTestSuite) TestCreate_MissingParent() {
	s.repo.On("FindByID", anyCtx, 9).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Create(ctxBg, staff, domain.CategoryPayload{Name: strPtr("Child"), ParentCategoryID: intPtr(9)})

	s.Contains(s.validationDetails(err), "parentCategoryID")
}

func (s *CategoryServiceTestSuite) TestCreate_WithParent() {
	s.repo.On("FindByID", anyCtx, 2).Return(category(2, nil, other.AccountID, domain.StatusPublished), nil).Once()
	s.repo.On("MaxID", anyCtx).Return(5, nil).Once()
	s.repo.On("Exists", anyCtx, 6).Return(false, nil).Once()
	s.repo.On("Create", anyCtx, mock.MatchedBy(func(c domain.Category) bool {
		return c.ParentCategoryID != nil && *c.ParentCategoryID == 2
	})).Return(nil).Once()

	_, err := s.service.Create(ctxBg, staff, domain.CategoryPayload{Name: strPtr("Child"), ParentCategoryID: intPtr(2)})

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestUpdate_SelfParent() {
	_, err := s.service.Update(ctxBg, staff, 4, domain.CategoryPayload{ParentCategoryID: intPtr(4)})

	s.Contains(s.validationDetails(err), "parentCategoryID")
}

func (s *CategoryServiceTestSuite) TestUpdate_ParentCycle() {
	s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, staff.AccountID, domain.StatusDraft), nil).Once()
	s.repo.On("FindByID", anyCtx, 3).Return(category(3, intPtr(2), staff.AccountID, domain.StatusPublished), nil).Once()
	s.repo.On("FindByID", anyCtx, 2).Return(category(2, intPtr(1), staff.AccountID, domain.StatusPublished), nil).Once()
	s.repo.On("FindByID", anyCtx, 1).Return(category(1, nil, staff.AccountID, domain.StatusDraft), nil).Once()

	_, err := s.service.Update(ctxBg, staff, 1, domain.CategoryPayload{ParentCategoryID: intPtr(3)})

	s.Contains(s.validationDetails(err), "parentCategoryID")
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestUpdate_AdminTogglesActive() {
	s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, staff.AccountID, domain.StatusPublished), nil).Once()
	s.repo.On("Update", anyCtx, mock.MatchedBy(func(c domain.Category) bool { return !c.IsActive })).Return(nil).Once()

	updated, err := s.service.Update(ctxBg, admin, 1, domain.CategoryPayload{IsActive: boolPtr(false)})

	s.Require().NoError(err)
	s.False(updated.IsActive)
}

func (s *CategoryServiceTestSuite) TestUpdate_AdminPendingOnlyToPublishedOrDraft() {
	s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, staff.AccountID, domain.StatusPending), nil).Once()

	_, err := s.service.Update(ctxBg, admin, 1, domain.CategoryPayload{Status: statusPtr(domain.StatusApproved)})

	s.ErrorIs(err, apperrors.ErrIllegalTransition)
}

func (s *CategoryServiceTestSuite) TestUpdate_ArchivedIsUnknownStatus() {
	s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, staff.AccountID, domain.StatusPublished), nil).Once()

	_, err := s.service.Update(ctxBg, admin, 1, domain.CategoryPayload{Status: statusPtr(domain.StatusArchived)})

	s.ErrorIs(err, apperrors.ErrUnknownStatus)
}

func (s *CategoryServiceTestSuite) TestUpdate_StaffStatusOnlyOnOthersCategory() {
	s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, other.AccountID, domain.StatusPending), nil).Once()

	_, err := s.service.Update(ctxBg, staff, 1, domain.CategoryPayload{Status: statusPtr(domain.StatusPending)})

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestUpdate_StaffSameStatusStaysLocked() {
	for _, status := range []domain.Status{domain.StatusApproved, domain.StatusPublished} {
		s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, staff.AccountID, status), nil).Once()

		_, err := s.service.Update(ctxBg, staff, 1, domain.CategoryPayload{Status: statusPtr(status)})

		s.ErrorIs(err, apperrors.ErrLockedAfterApproval, "status %s", status)
	}
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestTransition() {
	s.repo.On("FindByIDForUpdate", anyCtx, 1).Return(category(1, nil, staff.AccountID, domain.StatusPending), nil).Twice()
	s.repo.On("Update", anyCtx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	_, err := s.service.Transition(ctxBg, admin, 1, workflow.ActionApprove, "")
	s.ErrorIs(err, apperrors.ErrIllegalTransition)

	status, err := s.service.Transition(ctxBg, admin, 1, workflow.ActionPublish, "")
	s.Require().NoError(err)
	s.Equal(domain.StatusPublished, status)
}

func (s *CategoryServiceTestSuite) TestListActive_UsesActiveReference() {
	items := []domain.Category{
		*category(1, nil, staff.AccountID, domain.StatusPublished),
		*category(2, nil, staff.AccountID, domain.StatusPending),
	}
	items[0].IsActive = false
	var captured workflow.Predicate
	s.repo.On("Query", anyCtx, mock.AnythingOfType("workflow.Predicate"), domain.Page{}).
		Run(func(args mock.Arguments) { captured = args.Get(1).(workflow.Predicate) }).
		Return([]domain.Category{}, nil).Once()

	_, err := s.service.ListActive(ctxBg)
	s.Require().NoError(err)

	s.False(captured.Match(&items[0]))
	s.False(captured.Match(&items[1]))
	items[0].IsActive = true
	s.True(captured.Match(&items[0]))
}
