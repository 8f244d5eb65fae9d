package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

func article(id string, status domain.Status, owner int) domain.Article {
	return domain.Article{
		ArticleID:     id,
		Title:         "Title " + id,
		Content:       "Body of " + id,
		WorkflowState: domain.WorkflowState{Status: status, CreatedByID: owner, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
}

func fixtureArticles() []domain.Article {
	deleted := article("deleted", domain.StatusPublished, 7)
	deleted.IsDeleted = true
	return []domain.Article{
		article("own-draft", domain.StatusDraft, 7),
		article("own-pending", domain.StatusPending, 7),
		article("other-draft", domain.StatusDraft, 8),
		article("other-pending", domain.StatusPending, 8),
		article("approved", domain.StatusApproved, 8),
		article("published", domain.StatusPublished, 8),
		article("archived", domain.StatusArchived, 8),
		deleted,
	}
}

func ids(items []domain.Article) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.ArticleID
	}
	return out
}

func TestBuildPredicateByRole(t *testing.T) {
	items := fixtureArticles()

	admin := workflow.Filter(items, workflow.BuildPredicate(domain.KindArticle, domain.RoleAdmin, 1))
	assert.ElementsMatch(t, []string{"own-pending", "other-pending", "approved", "published"}, ids(admin))

	staff := workflow.Filter(items, workflow.BuildPredicate(domain.KindArticle, domain.RoleStaff, 7))
	assert.ElementsMatch(t, []string{"own-draft", "own-pending", "published"}, ids(staff))

	guest := workflow.Filter(items, workflow.BuildPredicate(domain.KindArticle, domain.RoleGuest, 0))
	assert.Equal(t, []string{"published"}, ids(guest))
}

func TestGuestNeverSeesUnpublished(t *testing.T) {
	for _, kind := range allKinds {
		p := workflow.BuildPredicate(kind, domain.RoleGuest, 0)
		for _, status := range workflow.LegalStatuses(kind) {
			tag := &domain.Tag{TagID: 1, WorkflowState: domain.WorkflowState{Status: status, IsActive: true}}
			assert.Equal(t, status == domain.StatusPublished, p.Match(tag), "%s %s", kind, status)
		}
	}
}

func TestActiveReference(t *testing.T) {
	p := workflow.ActiveReference(domain.KindTag)
	active := &domain.Tag{WorkflowState: domain.WorkflowState{Status: domain.StatusApproved, IsActive: true}}
	inactive := &domain.Tag{WorkflowState: domain.WorkflowState{Status: domain.StatusPublished, IsActive: false}}
	pending := &domain.Tag{WorkflowState: domain.WorkflowState{Status: domain.StatusPending, IsActive: true}}
	assert.True(t, p.Match(active))
	assert.False(t, p.Match(inactive))
	assert.False(t, p.Match(pending))

	articleRef := workflow.ActiveReference(domain.KindArticle)
	a := article("x", domain.StatusPublished, 1)
	assert.True(t, articleRef.Match(&a))
}

func TestRefineComposesFilters(t *testing.T) {
	items := fixtureArticles()
	category := 3
	items[5].CategoryID = &category
	items[5].TagIDs = []int{4, 9}
	items[5].Title = "Election night recap"

	base := workflow.BuildPredicate(domain.KindArticle, domain.RoleGuest, 0)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tagID := 9
	filtered := workflow.Filter(items, workflow.Refine(domain.KindArticle, base, domain.ListFilter{
		Query:      "ELECTION",
		CategoryID: &category,
		TagID:      &tagID,
		From:       &from,
	}))
	require.Len(t, filtered, 1)
	assert.Equal(t, "published", filtered[0].ArticleID)

	otherTag := 5
	filtered = workflow.Filter(items, workflow.Refine(domain.KindArticle, base, domain.ListFilter{TagID: &otherTag}))
	assert.Empty(t, filtered)

	to := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	filtered = workflow.Filter(items, workflow.Refine(domain.KindArticle, base, domain.ListFilter{To: &to}))
	assert.Empty(t, filtered)
}
