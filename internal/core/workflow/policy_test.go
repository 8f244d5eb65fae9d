package workflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

var allKinds = []domain.Kind{domain.KindArticle, domain.KindCategory, domain.KindTag}

type PolicyTestSuite struct {
	suite.Suite
}

func TestPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (s *PolicyTestSuite) TestLegalStatuses() {
	s.Equal([]domain.Status{1, 2, 3, 4, 5}, workflow.LegalStatuses(domain.KindArticle))
	s.Equal([]domain.Status{1, 2, 3, 4}, workflow.LegalStatuses(domain.KindCategory))
	s.Equal([]domain.Status{1, 2, 3, 4}, workflow.LegalStatuses(domain.KindTag))
	s.False(workflow.IsLegalStatus(domain.KindTag, domain.StatusArchived))
}

func (s *PolicyTestSuite) TestTransitionTable() {
	shared := [][2]domain.Status{{1, 2}, {2, 3}, {2, 4}, {2, 1}}
	for _, kind := range allKinds {
		for _, pair := range shared {
			s.True(workflow.IsLegalTransition(kind, pair[0], pair[1]), "%s %v", kind, pair)
		}
	}
	s.True(workflow.IsLegalTransition(domain.KindArticle, domain.StatusPublished, domain.StatusApproved))
	s.True(workflow.IsLegalTransition(domain.KindArticle, domain.StatusPublished, domain.StatusArchived))
	s.False(workflow.IsLegalTransition(domain.KindCategory, domain.StatusPublished, domain.StatusApproved))
	s.False(workflow.IsLegalTransition(domain.KindTag, domain.StatusPublished, domain.StatusArchived))
	s.False(workflow.IsLegalTransition(domain.KindArticle, domain.StatusDraft, domain.StatusPublished))
	s.False(workflow.IsLegalTransition(domain.KindArticle, domain.StatusArchived, domain.StatusPublished))
}

func (s *PolicyTestSuite) TestCheckTransitionErrors() {
	err := workflow.CheckTransition(domain.KindCategory, domain.StatusPending, domain.StatusArchived)
	s.ErrorIs(err, apperrors.ErrUnknownStatus)

	err = workflow.CheckTransition(domain.KindArticle, domain.StatusDraft, domain.StatusApproved)
	s.ErrorIs(err, apperrors.ErrIllegalTransition)

	s.NoError(workflow.CheckTransition(domain.KindArticle, domain.StatusPending, domain.StatusPublished))
}

func (s *PolicyTestSuite) TestParseAction() {
	action, err := workflow.ParseAction(" Publish ")
	s.NoError(err)
	s.Equal(workflow.ActionPublish, action)

	_, err = workflow.ParseAction("explode")
	s.ErrorIs(err, apperrors.ErrValidation)

	from, to, ok := workflow.ActionTarget(workflow.ActionUnpublish)
	s.True(ok)
	s.Equal(domain.StatusPublished, from)
	s.Equal(domain.StatusApproved, to)
}

func TestAdminIllegalPairsAlwaysDenied(t *testing.T) {
	guard := workflow.NewGuard()
	admin := domain.Actor{Role: domain.RoleAdmin, AccountID: 1}
	for _, kind := range allKinds {
		statuses := workflow.LegalStatuses(kind)
		for _, from := range statuses {
			for _, to := range statuses {
				if workflow.IsLegalTransition(kind, from, to) {
					continue
				}
				state := domain.WorkflowState{Status: from, CreatedByID: 1}
				err := guard.AuthorizeStatusChange(kind, admin, state, to)
				assert.True(t, errors.Is(err, apperrors.ErrIllegalTransition), "%s %s->%s: %v", kind, from, to, err)
			}
		}
	}
}
