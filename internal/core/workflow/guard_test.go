package workflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

type GuardTestSuite struct {
	suite.Suite
	guard workflow.Guard
	now   time.Time
	admin domain.Actor
	staff domain.Actor
	other domain.Actor
	guest domain.Actor
}

func TestGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}

func (s *GuardTestSuite) SetupTest() {
	s.now = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	s.guard = workflow.NewGuard(workflow.WithClock(func() time.Time { return s.now }))
	s.admin = domain.Actor{Role: domain.RoleAdmin, AccountID: 1}
	s.staff = domain.Actor{Role: domain.RoleStaff, AccountID: 10}
	s.other = domain.Actor{Role: domain.RoleStaff, AccountID: 11}
	s.guest = domain.GuestActor
}

func (s *GuardTestSuite) denialReason(err error) apperrors.DenialReason {
	var denial *apperrors.DenialError
	s.Require().True(errors.As(err, &denial), "expected DenialError, got %v", err)
	return denial.Reason
}

func (s *GuardTestSuite) TestAuthorizeCreate() {
	status, err := s.guard.AuthorizeCreate(domain.KindCategory, domain.RoleStaff, domain.StatusPending)
	s.NoError(err)
	s.Equal(domain.StatusPending, status)

	_, err = s.guard.AuthorizeCreate(domain.KindCategory, domain.RoleAdmin, domain.StatusDraft)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.Equal(apperrors.ReasonRole, s.denialReason(err))

	_, err = s.guard.AuthorizeCreate(domain.KindArticle, domain.RoleAdmin, domain.StatusDraft)
	s.NoError(err)

	_, err = s.guard.AuthorizeCreate(domain.KindArticle, domain.RoleGuest, domain.StatusDraft)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.guard.AuthorizeCreate(domain.KindTag, domain.RoleStaff, domain.StatusPublished)
	s.ErrorIs(err, apperrors.ErrInvalidInitialStatus)
	s.Equal(apperrors.ReasonInitialStatus, s.denialReason(err))
}

func (s *GuardTestSuite) TestFieldEditOwnershipAndLock() {
	draft := domain.WorkflowState{Status: domain.StatusDraft, CreatedByID: s.staff.AccountID}
	s.NoError(s.guard.AuthorizeFieldEdit(domain.KindArticle, s.staff, draft))

	err := s.guard.AuthorizeFieldEdit(domain.KindArticle, s.other, draft)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.Equal(apperrors.ReasonOwnership, s.denialReason(err))

	for _, locked := range []domain.Status{domain.StatusApproved, domain.StatusPublished} {
		state := domain.WorkflowState{Status: locked, CreatedByID: s.staff.AccountID}
		for i := 0; i < 2; i++ {
			err = s.guard.AuthorizeFieldEdit(domain.KindArticle, s.staff, state)
			s.ErrorIs(err, apperrors.ErrLockedAfterApproval)
			s.Equal(apperrors.ReasonStatusLock, s.denialReason(err))
		}
	}

	err = s.guard.AuthorizeFieldEdit(domain.KindTag, s.admin, draft)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.Equal(apperrors.ReasonRole, s.denialReason(err))

	s.ErrorIs(s.guard.AuthorizeFieldEdit(domain.KindTag, s.guest, draft), apperrors.ErrForbidden)
}

func (s *GuardTestSuite) TestDeletedEntityIsNeverAuthorized() {
	state := domain.WorkflowState{Status: domain.StatusPending, CreatedByID: s.staff.AccountID}
	state.IsDeleted = true

	for _, actor := range []domain.Actor{s.admin, s.staff, s.guest} {
		err := s.guard.AuthorizeFieldEdit(domain.KindArticle, actor, state)
		s.True(errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrForbidden))

		err = s.guard.AuthorizeStatusChange(domain.KindArticle, actor, state, domain.StatusPublished)
		s.True(errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrForbidden))

		_, err = s.guard.AuthorizeAction(domain.KindArticle, actor, state, workflow.ActionPublish)
		s.True(errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrForbidden))
	}
}

func (s *GuardTestSuite) TestStaffStatusChange() {
	draft := domain.WorkflowState{Status: domain.StatusDraft, CreatedByID: s.staff.AccountID}
	s.NoError(s.guard.AuthorizeStatusChange(domain.KindArticle, s.staff, draft, domain.StatusPending))
	s.ErrorIs(s.guard.AuthorizeStatusChange(domain.KindArticle, s.other, draft, domain.StatusPending), apperrors.ErrForbidden)

	pending := domain.WorkflowState{Status: domain.StatusPending, CreatedByID: s.staff.AccountID}
	s.ErrorIs(s.guard.AuthorizeStatusChange(domain.KindArticle, s.staff, pending, domain.StatusPublished), apperrors.ErrForbidden)
	s.ErrorIs(s.guard.AuthorizeStatusChange(domain.KindArticle, s.staff, pending, domain.StatusDraft), apperrors.ErrForbidden)
}

func (s *GuardTestSuite) TestAdminPendingDestinationsForReferenceKinds() {
	pending := domain.WorkflowState{Status: domain.StatusPending, CreatedByID: s.staff.AccountID}
	for _, kind := range []domain.Kind{domain.KindCategory, domain.KindTag} {
		s.NoError(s.guard.AuthorizeStatusChange(kind, s.admin, pending, domain.StatusPublished))
		s.NoError(s.guard.AuthorizeStatusChange(kind, s.admin, pending, domain.StatusDraft))
		s.ErrorIs(s.guard.AuthorizeStatusChange(kind, s.admin, pending, domain.StatusApproved), apperrors.ErrIllegalTransition)
	}
	s.NoError(s.guard.AuthorizeStatusChange(domain.KindArticle, s.admin, pending, domain.StatusApproved))
}

func (s *GuardTestSuite) TestAuthorizeAction() {
	draft := domain.WorkflowState{Status: domain.StatusDraft, CreatedByID: s.staff.AccountID}
	_, err := s.guard.AuthorizeAction(domain.KindArticle, s.admin, draft, workflow.ActionPublish)
	s.ErrorIs(err, apperrors.ErrIllegalTransition)
	s.Contains(err.Error(), "Only Pending article entries can be published. Current status: Draft")

	to, err := s.guard.AuthorizeAction(domain.KindArticle, s.staff, draft, workflow.ActionSubmit)
	s.NoError(err)
	s.Equal(domain.StatusPending, to)

	pending := domain.WorkflowState{Status: domain.StatusPending, CreatedByID: s.staff.AccountID}
	_, err = s.guard.AuthorizeAction(domain.KindArticle, s.staff, pending, workflow.ActionApprove)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.guard.AuthorizeAction(domain.KindTag, s.admin, pending, workflow.ActionApprove)
	s.ErrorIs(err, apperrors.ErrIllegalTransition)

	published := domain.WorkflowState{Status: domain.StatusPublished, CreatedByID: s.staff.AccountID}
	_, err = s.guard.AuthorizeAction(domain.KindCategory, s.admin, published, workflow.ActionArchive)
	s.ErrorIs(err, apperrors.ErrIllegalTransition)

	to, err = s.guard.AuthorizeAction(domain.KindArticle, s.admin, published, workflow.ActionArchive)
	s.NoError(err)
	s.Equal(domain.StatusArchived, to)
}

func (s *GuardTestSuite) TestAuthorizeDelete() {
	s.NoError(s.guard.AuthorizeDelete(domain.RoleAdmin))
	s.ErrorIs(s.guard.AuthorizeDelete(domain.RoleStaff), apperrors.ErrForbidden)
	s.ErrorIs(s.guard.AuthorizeDelete(domain.RoleGuest), apperrors.ErrForbidden)
}

func (s *GuardTestSuite) TestMutationsNeverTouchCreator() {
	state := domain.WorkflowState{Status: domain.StatusDraft, CreatedByID: s.staff.AccountID}
	s.guard.MutationFor(s.admin).Apply(&state)
	s.Equal(s.staff.AccountID, state.CreatedByID)
	s.Equal(s.admin.AccountID, *state.UpdatedByID)
	s.Equal(s.now, *state.ModifiedAt)

	s.guard.DeletionFor(s.admin).Apply(&state)
	s.True(state.IsDeleted)
	s.Equal(s.admin.AccountID, *state.DeletedBy)
	s.Equal(s.now, *state.DeletedAt)
	s.Equal(s.staff.AccountID, state.CreatedByID)
}
