package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
	"github.com/SscSPs/news_management_app/internal/pkg/xcache"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	articles   *MockWorkflowRepository[domain.Article, string]
	categories *MockWorkflowRepository[domain.Category, int]
	tags       *MockWorkflowRepository[domain.Tag, int]
	now        time.Time
	service    portssvc.ArticleSvcFacade
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}

func (s *ArticleServiceTestSuite) SetupTest() {
	s.articles = new(MockWorkflowRepository[domain.Article, string])
	s.categories = new(MockWorkflowRepository[domain.Category, int])
	s.tags = new(MockWorkflowRepository[domain.Tag, int])
	s.now = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	s.service = s.newService()
}

func (s *ArticleServiceTestSuite) newService(opts ...services.WorkflowOption[domain.Article]) portssvc.ArticleSvcFacade {
	opts = append([]services.WorkflowOption[domain.Article]{
		services.WithClock[domain.Article](func() time.Time { return s.now }),
	}, opts...)
	return services.NewArticleService(s.articles, s.categories, s.tags, opts...)
}

func (s *ArticleServiceTestSuite) TearDownTest() {
	s.articles.AssertExpectations(s.T())
	s.categories.AssertExpectations(s.T())
	s.tags.AssertExpectations(s.T())
}

func (s *ArticleServiceTestSuite) article(id string, owner int, status domain.Status) *domain.Article {
	return &domain.Article{
		ArticleID: id,
		Title:     "Title " + id,
		Headline:  "Headline",
		Content:   "Body",
		TagIDs:    []int{},
		WorkflowState: domain.WorkflowState{
			Status:      status,
			CreatedByID: owner,
			CreatedAt:   s.now.Add(-time.Hour),
			Version:     1,
		},
	}
}

func activeCategory(id int) *domain.Category {
	return &domain.Category{
		CategoryID:    id,
		Name:          "World",
		WorkflowState: domain.WorkflowState{Status: domain.StatusPublished, IsActive: true},
	}
}

func newArticlePayload() domain.ArticlePayload {
	return domain.ArticlePayload{
		Title:    strPtr("Storm hits the coast"),
		Headline: strPtr("Storm"),
		Content:  strPtr("Heavy rain expected."),
	}
}

func (s *ArticleServiceTestSuite) TestCreate_StaffDraftGetsGeneratedID() {
	s.articles.On("Exists", anyCtx, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.articles.On("Create", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.CreatedByID == staff.AccountID && a.Status == domain.StatusDraft && a.Version == 1
	})).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, newArticlePayload())

	s.Require().NoError(err)
	s.True(strings.HasPrefix(created.ArticleID, "ART20250304050607"), created.ArticleID)
	s.Len(created.ArticleID, 20)
	s.Equal(domain.StatusDraft, created.Status)
	s.Equal(s.now, created.CreatedAt)
	s.Equal([]int{}, created.TagIDs)
	s.False(created.IsDeleted)
}

func (s *ArticleServiceTestSuite) TestCreate_AdminMayCreatePending() {
	payload := newArticlePayload()
	payload.Status = statusPtr(domain.StatusPending)
	s.articles.On("Exists", anyCtx, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.articles.On("Create", anyCtx, mock.AnythingOfType("domain.Article")).Return(nil).Once()

	created, err := s.service.Create(ctxBg, admin, payload)

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, created.Status)
	s.Equal(admin.AccountID, created.CreatedByID)
}

func (s *ArticleServiceTestSuite) TestCreate_GuestForbidden() {
	_, err := s.service.Create(ctxBg, guest, newArticlePayload())

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.articles.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ArticleServiceTestSuite) TestCreate_InvalidInitialStatus() {
	payload := newArticlePayload()
	payload.Status = statusPtr(domain.StatusPublished)

	_, err := s.service.Create(ctxBg, staff, payload)

	s.ErrorIs(err, apperrors.ErrInvalidInitialStatus)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ArticleServiceTestSuite) TestCreate_MissingContentIsValidationError() {
	payload := newArticlePayload()
	payload.Content = nil

	_, err := s.service.Create(ctxBg, staff, payload)

	var validationErr *apperrors.ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Contains(validationErr.Details, "content")
}

func (s *ArticleServiceTestSuite) TestCreate_InactiveCategoryRejected() {
	inactive := activeCategory(3)
	inactive.IsActive = false
	payload := newArticlePayload()
	payload.CategoryID = intPtr(3)
	payload.TagIDs = []int{5, 5}
	s.categories.On("FindByID", anyCtx, 3).Return(inactive, nil).Once()
	s.tags.On("FindByID", anyCtx, 5).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Create(ctxBg, staff, payload)

	var validationErr *apperrors.ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Contains(validationErr.Details, "categoryID")
	s.Contains(validationErr.Details, "tagIDs")
}

func (s *ArticleServiceTestSuite) TestCreate_ActiveReferencesAccepted() {
	payload := newArticlePayload()
	payload.CategoryID = intPtr(3)
	payload.TagIDs = []int{5}
	s.categories.On("FindByID", anyCtx, 3).Return(activeCategory(3), nil).Once()
	s.tags.On("FindByID", anyCtx, 5).Return(&domain.Tag{
		TagID:         5,
		WorkflowState: domain.WorkflowState{Status: domain.StatusApproved, IsActive: true},
	}, nil).Once()
	s.articles.On("Exists", anyCtx, mock.AnythingOfType("string")).Return(false, nil).Once()
	s.articles.On("Create", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.CategoryID != nil && *a.CategoryID == 3 && len(a.TagIDs) == 1
	})).Return(nil).Once()

	_, err := s.service.Create(ctxBg, staff, payload)

	s.NoError(err)
}

func (s *ArticleServiceTestSuite) TestCreate_IDGenerationExhausted() {
	service := s.newService(services.WithIDAttempts[domain.Article](3))
	s.articles.On("Exists", anyCtx, mock.AnythingOfType("string")).Return(true, nil).Times(3)

	_, err := service.Create(ctxBg, staff, newArticlePayload())

	s.ErrorIs(err, apperrors.ErrIDGenerationExhausted)
	s.articles.AssertNumberOfCalls(s.T(), "Exists", 3)
}

func (s *ArticleServiceTestSuite) TestCreate_RetriesAfterDuplicate() {
	s.articles.On("Exists", anyCtx, mock.AnythingOfType("string")).Return(false, nil).Twice()
	s.articles.On("Create", anyCtx, mock.AnythingOfType("domain.Article")).Return(apperrors.ErrDuplicate).Once()
	s.articles.On("Create", anyCtx, mock.AnythingOfType("domain.Article")).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, newArticlePayload())

	s.Require().NoError(err)
	s.NotEmpty(created.ArticleID)
	s.articles.AssertNumberOfCalls(s.T(), "Create", 2)
}

func (s *ArticleServiceTestSuite) TestCreate_SuppliedIDTaken() {
	payload := newArticlePayload()
	payload.ArticleID = strPtr("ART-CUSTOM")
	s.articles.On("Exists", anyCtx, "ART-CUSTOM").Return(true, nil).Once()

	_, err := s.service.Create(ctxBg, staff, payload)

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *ArticleServiceTestSuite) TestCreate_SuppliedIDUsed() {
	payload := newArticlePayload()
	payload.ArticleID = strPtr("ART-CUSTOM")
	s.articles.On("Exists", anyCtx, "ART-CUSTOM").Return(false, nil).Once()
	s.articles.On("Create", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.ArticleID == "ART-CUSTOM"
	})).Return(nil).Once()

	created, err := s.service.Create(ctxBg, staff, payload)

	s.Require().NoError(err)
	s.Equal("ART-CUSTOM", created.ArticleID)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffEditsOwnDraft() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusDraft), nil).Once()
	s.articles.On("Update", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.Title == "New title" && a.UpdatedByID != nil && *a.UpdatedByID == staff.AccountID
	})).Return(nil).Once()

	updated, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Title: strPtr("New title")})

	s.Require().NoError(err)
	s.Equal("New title", updated.Title)
	s.Equal(int64(2), updated.Version)
	s.Require().NotNil(updated.ModifiedAt)
	s.Equal(s.now, *updated.ModifiedAt)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffSubmitsDraft() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusDraft), nil).Once()
	s.articles.On("Update", anyCtx, mock.AnythingOfType("domain.Article")).Return(nil).Once()

	updated, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Status: statusPtr(domain.StatusPending)})

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, updated.Status)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffLockedAfterApproval() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusApproved), nil).Once()

	_, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Title: strPtr("Late edit")})

	s.ErrorIs(err, apperrors.ErrLockedAfterApproval)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.articles.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffCannotEditOthersDraft() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", other.AccountID, domain.StatusDraft), nil).Once()

	_, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Title: strPtr("Hijack")})

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffStatusOnlyOnOthersArticle() {
	for _, status := range []domain.Status{domain.StatusDraft, domain.StatusPublished} {
		s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", other.AccountID, status), nil).Once()

		_, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Status: statusPtr(status)})

		s.ErrorIs(err, apperrors.ErrForbidden, "status %s", status)
	}
	s.articles.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffSameStatusStaysLocked() {
	for _, status := range []domain.Status{domain.StatusApproved, domain.StatusPublished} {
		s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, status), nil).Once()

		_, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Status: statusPtr(status)})

		s.ErrorIs(err, apperrors.ErrLockedAfterApproval, "status %s", status)
	}
	s.articles.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaffResendsOwnDraftStatus() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusDraft), nil).Once()
	s.articles.On("Update", anyCtx, mock.AnythingOfType("domain.Article")).Return(nil).Once()

	updated, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Status: statusPtr(domain.StatusDraft)})

	s.Require().NoError(err)
	s.Equal(domain.StatusDraft, updated.Status)
}

func (s *ArticleServiceTestSuite) TestUpdate_AdminIgnoresContentAndChangesStatus() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusPending), nil).Once()
	s.articles.On("Update", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.Title == "Title A1" && a.Status == domain.StatusPublished
	})).Return(nil).Once()

	updated, err := s.service.Update(ctxBg, admin, "A1", domain.ArticlePayload{
		Title:  strPtr("Admin rewrite"),
		Status: statusPtr(domain.StatusPublished),
	})

	s.Require().NoError(err)
	s.Equal("Title A1", updated.Title)
	s.Equal(domain.StatusPublished, updated.Status)
}

func (s *ArticleServiceTestSuite) TestUpdate_AdminIllegalTransition() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusArchived), nil).Once()

	_, err := s.service.Update(ctxBg, admin, "A1", domain.ArticlePayload{Status: statusPtr(domain.StatusPublished)})

	s.ErrorIs(err, apperrors.ErrIllegalTransition)
}

func (s *ArticleServiceTestSuite) TestUpdate_StaleVersionConflicts() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusDraft), nil).Once()
	s.articles.On("Update", anyCtx, mock.AnythingOfType("domain.Article")).Return(apperrors.ErrConflict).Once()

	_, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Title: strPtr("Race")})

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *ArticleServiceTestSuite) TestUpdate_DeletedIsNotFound() {
	deleted := s.article("A1", staff.AccountID, domain.StatusDraft)
	deleted.IsDeleted = true
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(deleted, nil).Once()

	_, err := s.service.Update(ctxBg, staff, "A1", domain.ArticlePayload{Title: strPtr("x")})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ArticleServiceTestSuite) TestTransition_AdminApproves() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusPending), nil).Once()
	s.articles.On("Update", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.Status == domain.StatusApproved && *a.UpdatedByID == admin.AccountID
	})).Return(nil).Once()

	status, err := s.service.Transition(ctxBg, admin, "A1", workflow.ActionApprove, "looks good")

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, status)
}

func (s *ArticleServiceTestSuite) TestTransition_StaffCannotApprove() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusPending), nil).Once()

	_, err := s.service.Transition(ctxBg, staff, "A1", workflow.ActionApprove, "")

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *ArticleServiceTestSuite) TestTransition_WrongSourceStatus() {
	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusDraft), nil).Once()

	_, err := s.service.Transition(ctxBg, admin, "A1", workflow.ActionPublish, "")

	s.ErrorIs(err, apperrors.ErrIllegalTransition)
}

func (s *ArticleServiceTestSuite) TestDelete() {
	err := s.service.Delete(ctxBg, staff, "A1")
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusPublished), nil).Once()
	s.articles.On("Update", anyCtx, mock.MatchedBy(func(a domain.Article) bool {
		return a.IsDeleted && a.DeletedBy != nil && *a.DeletedBy == admin.AccountID && a.DeletedAt != nil
	})).Return(nil).Once()

	s.NoError(s.service.Delete(ctxBg, admin, "A1"))
}

func (s *ArticleServiceTestSuite) TestGet_Visibility() {
	draft := s.article("A1", staff.AccountID, domain.StatusDraft)
	s.articles.On("FindByID", anyCtx, "A1").Return(draft, nil)
	s.articles.On("FindByID", anyCtx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	got, err := s.service.Get(ctxBg, staff, "A1")
	s.Require().NoError(err)
	s.Equal("A1", got.ArticleID)

	_, err = s.service.Get(ctxBg, other, "A1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.Get(ctxBg, admin, "A1")
	s.ErrorIs(err, apperrors.ErrNotFound, "admins do not see drafts")

	_, err = s.service.Get(ctxBg, guest, "A1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.Get(ctxBg, admin, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ArticleServiceTestSuite) TestList_ServedFromCacheUntilWrite() {
	cache := xcache.NewMemoryWithOptions[[]domain.Article](time.Minute, 2*time.Minute)
	service := s.newService(services.WithListingCache[domain.Article](cache))
	published := []domain.Article{*s.article("A1", staff.AccountID, domain.StatusPublished)}
	s.articles.On("Query", anyCtx, mock.AnythingOfType("workflow.Predicate"), domain.Page{Limit: 10}).Return(published, nil).Twice()

	filter := domain.ListFilter{Page: domain.Page{Limit: 10}}
	first, err := service.ListPublic(ctxBg, filter)
	s.Require().NoError(err)
	second, err := service.ListPublic(ctxBg, filter)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.articles.AssertNumberOfCalls(s.T(), "Query", 1)

	s.articles.On("FindByIDForUpdate", anyCtx, "A1").Return(s.article("A1", staff.AccountID, domain.StatusPublished), nil).Once()
	s.articles.On("Update", anyCtx, mock.AnythingOfType("domain.Article")).Return(nil).Once()
	_, err = service.Transition(ctxBg, admin, "A1", workflow.ActionArchive, "")
	s.Require().NoError(err)

	_, err = service.ListPublic(ctxBg, filter)
	s.Require().NoError(err)
	s.articles.AssertNumberOfCalls(s.T(), "Query", 2)
}

func (s *ArticleServiceTestSuite) TestList_StaffPredicateIncludesOwnDrafts() {
	items := []domain.Article{
		*s.article("A1", staff.AccountID, domain.StatusDraft),
		*s.article("A2", other.AccountID, domain.StatusDraft),
		*s.article("A3", other.AccountID, domain.StatusPublished),
	}
	var captured workflow.Predicate
	s.articles.On("Query", anyCtx, mock.AnythingOfType("workflow.Predicate"), domain.Page{}).
		Run(func(args mock.Arguments) { captured = args.Get(1).(workflow.Predicate) }).
		Return(items, nil).Once()

	_, err := s.service.List(ctxBg, staff, domain.ListFilter{})
	s.Require().NoError(err)

	s.True(captured.Match(&items[0]))
	s.False(captured.Match(&items[1]))
	s.True(captured.Match(&items[2]))
}

func (s *ArticleServiceTestSuite) TestList_NilResultBecomesEmpty() {
	s.articles.On("Query", anyCtx, mock.Anything, mock.Anything).Return(nil, nil).Once()

	items, err := s.service.ListActive(ctxBg)

	s.Require().NoError(err)
	s.NotNil(items)
	s.Empty(items)
}
