package services_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

type TagServiceTestSuite struct {
	suite.Suite
	repo    *MockWorkflowRepository[domain.Tag, int]
	service portssvc.TagSvcFacade
}

func TestTagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TagServiceTestSuite))
}

func (s *TagServiceTestSuite) SetupTest() {
	s.repo = new(MockWorkflowRepository[domain.Tag, int])
	s.service = services.NewTagService(s.repo)
}

func (s *TagServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func tag(id, owner int, status domain.Status) *domain.Tag {
	return &domain.Tag{
		TagID: id,
		Name:  "economy",
		WorkflowState: domain.WorkflowState{
			Status:      status,
			CreatedByID: owner,
			IsActive:    true,
			Version:     3,
		},
	}
}

func (s *TagServiceTestSuite) TestCreate() {
	s.repo.On("Exists", anyCtx, 12).Return(false, nil).Once()
	s.repo.On("Create", anyCtx, mock.MatchedBy(func(t domain.Tag) bool {
		return t.TagID == 12 && t.Name == "election" && t.IsActive && t.Status == domain.StatusPending
	})).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, domain.TagPayload{
		TagID:  intPtr(12),
		Name:   strPtr("election"),
		Status: statusPtr(domain.StatusPending),
	})

	s.Require().NoError(err)
	s.Equal(12, created.TagID)
}

func (s *TagServiceTestSuite) TestCreate_Rejections() {
	_, err := s.service.Create(ctxBg, admin, domain.TagPayload{Name: strPtr("x")})
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.Create(ctxBg, guest, domain.TagPayload{Name: strPtr("x")})
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.Create(ctxBg, staff, domain.TagPayload{})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.Create(ctxBg, staff, domain.TagPayload{Name: strPtr("x"), Status: statusPtr(domain.StatusApproved)})
	s.ErrorIs(err, apperrors.ErrInvalidInitialStatus)
}

func (s *TagServiceTestSuite) TestUpdate_StaffRenamesPendingTag() {
	s.repo.On("FindByIDForUpdate", anyCtx, 4).Return(tag(4, staff.AccountID, domain.StatusPending), nil).Once()
	s.repo.On("Update", anyCtx, mock.MatchedBy(func(t domain.Tag) bool { return t.Name == "markets" && t.Version == 3 })).Return(nil).Once()

	updated, err := s.service.Update(ctxBg, staff, 4, domain.TagPayload{Name: strPtr("markets")})

	s.Require().NoError(err)
	s.Equal("markets", updated.Name)
	s.Equal(int64(4), updated.Version)
}

func (s *TagServiceTestSuite) TestUpdate_StaffCannotDeactivatePublished() {
	s.repo.On("FindByIDForUpdate", anyCtx, 4).Return(tag(4, staff.AccountID, domain.StatusPublished), nil).Once()

	_, err := s.service.Update(ctxBg, staff, 4, domain.TagPayload{IsActive: boolPtr(false)})

	s.ErrorIs(err, apperrors.ErrLockedAfterApproval)
}

func (s *TagServiceTestSuite) TestTransition_ArchiveIsNotATagAction() {
	s.repo.On("FindByIDForUpdate", anyCtx, 4).Return(tag(4, staff.AccountID, domain.StatusPublished), nil).Once()

	_, err := s.service.Transition(ctxBg, admin, 4, workflow.ActionArchive, "")

	s.ErrorIs(err, apperrors.ErrIllegalTransition)
}

func (s *TagServiceTestSuite) TestTransition_StaffSubmitsOwnDraft() {
	s.repo.On("FindByIDForUpdate", anyCtx, 4).Return(tag(4, staff.AccountID, domain.StatusDraft), nil).Once()
	s.repo.On("Update", anyCtx, mock.AnythingOfType("domain.Tag")).Return(nil).Once()

	status, err := s.service.Transition(ctxBg, staff, 4, workflow.ActionSubmit, "")

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, status)
}

func (s *TagServiceTestSuite) TestDelete_NotFound() {
	s.repo.On("FindByIDForUpdate", anyCtx, 99).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.Delete(ctxBg, admin, 99)

	s.ErrorIs(err, apperrors.ErrNotFound)
}
