package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

type articleService struct {
	*workflowService[domain.Article, *domain.Article, string]
	categoryRepo portsrepo.WorkflowReader[domain.Category, int]
	tagRepo      portsrepo.WorkflowReader[domain.Tag, int]
}

// NewArticleService creates the article service. Category and tag readers are
// used to check that referenced entries are active.
func NewArticleService(
	repo portsrepo.ArticleRepositoryFacade,
	categoryRepo portsrepo.WorkflowReader[domain.Category, int],
	tagRepo portsrepo.WorkflowReader[domain.Tag, int],
	opts ...WorkflowOption[domain.Article],
) portssvc.ArticleSvcFacade {
	cfg := applyWorkflowOptions(opts)
	return &articleService{
		workflowService: newWorkflowService[domain.Article, *domain.Article, string](
			domain.KindArticle, repo, newArticleIDs(cfg.clock), cfg),
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// Create stores a new article owned by actor.
func (s *articleService) Create(ctx context.Context, actor domain.Actor, payload domain.ArticlePayload) (*domain.Article, error) {
	status, err := s.authorizeCreate(actor, payload.Status)
	if err != nil {
		return nil, err
	}
	if err := workflow.ValidateArticlePayload(payload, true); err != nil {
		return nil, err
	}
	tagIDs := lo.Uniq(payload.TagIDs)
	if err := s.validateReferences(ctx, payload.CategoryID, tagIDs); err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:      *payload.Title,
		Headline:   *payload.Headline,
		Content:    *payload.Content,
		Source:     lo.FromPtr(payload.Source),
		CategoryID: payload.CategoryID,
		TagIDs:     tagIDs,
		ImageURL:   lo.FromPtr(payload.ImageURL),
	}
	if article.TagIDs == nil {
		article.TagIDs = []int{}
	}
	s.stampCreate(article, actor, status)

	if err := s.insert(ctx, article, payload.ArticleID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Article created", "article_id", article.ArticleID, "status", status.String())
	return article, nil
}

// Update applies payload as far as actor's role allows.
func (s *articleService) Update(ctx context.Context, actor domain.Actor, id string, payload domain.ArticlePayload) (*domain.Article, error) {
	if err := workflow.ValidateArticlePayload(payload, false); err != nil {
		return nil, err
	}
	edit := statusEdit{status: payload.Status, hasContent: payload.HasContent()}

	return s.update(ctx, actor, id, edit, func(article *domain.Article) error {
		if payload.CategoryID != nil || payload.TagIDs != nil {
			categoryID := article.CategoryID
			if payload.CategoryID != nil {
				categoryID = payload.CategoryID
			}
			tagIDs := article.TagIDs
			if payload.TagIDs != nil {
				tagIDs = lo.Uniq(payload.TagIDs)
			}
			if err := s.validateReferences(ctx, categoryID, tagIDs); err != nil {
				return err
			}
			article.CategoryID = categoryID
			article.TagIDs = tagIDs
		}
		if payload.Title != nil {
			article.Title = *payload.Title
		}
		if payload.Headline != nil {
			article.Headline = *payload.Headline
		}
		if payload.Content != nil {
			article.Content = *payload.Content
		}
		if payload.Source != nil {
			article.Source = *payload.Source
		}
		if payload.ImageURL != nil {
			article.ImageURL = *payload.ImageURL
		}
		return nil
	})
}

// validateReferences requires the category and every tag to be active references.
func (s *articleService) validateReferences(ctx context.Context, categoryID *int, tagIDs []int) error {
	details := map[string]string{}

	if categoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *categoryID)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to load category %d: %w", *categoryID, err)
		}
		if category == nil || !workflow.ActiveReference(domain.KindCategory).Match(category) {
			details["categoryID"] = fmt.Sprintf("category %d is not an active category", *categoryID)
		}
	}

	var inactive []string
	for _, tagID := range tagIDs {
		tag, err := s.tagRepo.FindByID(ctx, tagID)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to load tag %d: %w", tagID, err)
		}
		if tag == nil || !workflow.ActiveReference(domain.KindTag).Match(tag) {
			inactive = append(inactive, strconv.Itoa(tagID))
		}
	}
	if len(inactive) > 0 {
		details["tagIDs"] = fmt.Sprintf("tags %v are not active tags", inactive)
	}

	if len(details) > 0 {
		return &apperrors.ValidationError{Details: details}
	}
	return nil
}
