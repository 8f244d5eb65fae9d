package services

import (
	"context"

	"github.com/samber/lo"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

type tagService struct {
	*workflowService[domain.Tag, *domain.Tag, int]
}

// NewTagService creates the tag service.
func NewTagService(repo portsrepo.TagRepositoryFacade, opts ...WorkflowOption[domain.Tag]) portssvc.TagSvcFacade {
	cfg := applyWorkflowOptions(opts)
	return &tagService{
		workflowService: newWorkflowService[domain.Tag, *domain.Tag, int](
			domain.KindTag, repo, sequenceIDs{seq: repo}, cfg),
	}
}

// Create stores a new tag owned by actor. Tags start active.
func (s *tagService) Create(ctx context.Context, actor domain.Actor, payload domain.TagPayload) (*domain.Tag, error) {
	status, err := s.authorizeCreate(actor, payload.Status)
	if err != nil {
		return nil, err
	}
	if err := workflow.ValidateTagPayload(payload, true); err != nil {
		return nil, err
	}

	tag := &domain.Tag{
		Name:     *payload.Name,
		Note:     lo.FromPtr(payload.Note),
		ImageURL: lo.FromPtr(payload.ImageURL),
	}
	s.stampCreate(tag, actor, status)
	tag.IsActive = lo.FromPtrOr(payload.IsActive, true)

	if err := s.insert(ctx, tag, payload.TagID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tag created", "tag_id", tag.TagID, "status", status.String())
	return tag, nil
}

// Update applies payload as far as actor's role allows.
func (s *tagService) Update(ctx context.Context, actor domain.Actor, id int, payload domain.TagPayload) (*domain.Tag, error) {
	if err := workflow.ValidateTagPayload(payload, false); err != nil {
		return nil, err
	}
	edit := statusEdit{status: payload.Status, isActive: payload.IsActive, hasContent: payload.HasContent()}

	return s.update(ctx, actor, id, edit, func(tag *domain.Tag) error {
		if payload.Name != nil {
			tag.Name = *payload.Name
		}
		if payload.Note != nil {
			tag.Note = *payload.Note
		}
		if payload.ImageURL != nil {
			tag.ImageURL = *payload.ImageURL
		}
		return nil
	})
}
