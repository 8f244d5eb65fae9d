package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

// maxCategoryDepth bounds the parent walk of the cycle check.
const maxCategoryDepth = 32

type categoryService struct {
	*workflowService[domain.Category, *domain.Category, int]
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, opts ...WorkflowOption[domain.Category]) portssvc.CategorySvcFacade {
	cfg := applyWorkflowOptions(opts)
	return &categoryService{
		workflowService: newWorkflowService[domain.Category, *domain.Category, int](
			domain.KindCategory, repo, sequenceIDs{seq: repo}, cfg),
	}
}

// Create stores a new category owned by actor. New categories are active unless stated otherwise.
func (s *categoryService) Create(ctx context.Context, actor domain.Actor, payload domain.CategoryPayload) (*domain.Category, error) {
	status, err := s.authorizeCreate(actor, payload.Status)
	if err != nil {
		return nil, err
	}
	if err := workflow.ValidateCategoryPayload(payload, true); err != nil {
		return nil, err
	}
	if payload.ParentCategoryID != nil {
		if err := s.validateParent(ctx, 0, *payload.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	category := &domain.Category{
		Name:             *payload.Name,
		Description:      lo.FromPtr(payload.Description),
		ParentCategoryID: payload.ParentCategoryID,
		ImageURL:         lo.FromPtr(payload.ImageURL),
	}
	s.stampCreate(category, actor, status)
	category.IsActive = lo.FromPtrOr(payload.IsActive, true)

	if err := s.insert(ctx, category, payload.CategoryID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID, "status", status.String())
	return category, nil
}

// Update applies payload as far as actor's role allows.
func (s *categoryService) Update(ctx context.Context, actor domain.Actor, id int, payload domain.CategoryPayload) (*domain.Category, error) {
	payload.CategoryID = &id
	if err := workflow.ValidateCategoryPayload(payload, false); err != nil {
		return nil, err
	}
	edit := statusEdit{status: payload.Status, isActive: payload.IsActive, hasContent: payload.HasContent()}

	return s.update(ctx, actor, id, edit, func(category *domain.Category) error {
		if payload.ParentCategoryID != nil {
			if err := s.validateParent(ctx, id, *payload.ParentCategoryID); err != nil {
				return err
			}
			category.ParentCategoryID = payload.ParentCategoryID
		}
		if payload.Name != nil {
			category.Name = *payload.Name
		}
		if payload.Description != nil {
			category.Description = *payload.Description
		}
		if payload.ImageURL != nil {
			category.ImageURL = *payload.ImageURL
		}
		return nil
	})
}

// validateParent requires an existing, non-deleted parent that does not descend from self.
// self is zero for categories that do not exist yet.
func (s *categoryService) validateParent(ctx context.Context, self, parentID int) error {
	current := parentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		parent, err := s.repo.FindByID(ctx, current)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to load category %d: %w", current, err)
		}
		if parent == nil || parent.IsDeleted {
			if current == parentID {
				return apperrors.NewValidationError("parentCategoryID", fmt.Sprintf("parent category %d does not exist", parentID))
			}
			return nil
		}
		if self != 0 && parent.CategoryID == self {
			return apperrors.NewValidationError("parentCategoryID", "a category cannot be nested under its own descendant")
		}
		if parent.ParentCategoryID == nil {
			return nil
		}
		current = *parent.ParentCategoryID
	}
	return apperrors.NewValidationError("parentCategoryID", "category nesting is too deep")
}
