package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
	"github.com/SscSPs/news_management_app/internal/pkg/xcache"
)

type workflowConfig[T any] struct {
	cache      xcache.Cache[[]T]
	clock      func() time.Time
	idAttempts int
}

// WorkflowOption configures a moderated content service.
type WorkflowOption[T any] func(*workflowConfig[T])

// WithListingCache serves listings through cache. Without it listings always hit storage.
func WithListingCache[T any](cache xcache.Cache[[]T]) WorkflowOption[T] {
	return func(c *workflowConfig[T]) {
		c.cache = cache
	}
}

// WithClock overrides the clock used for timestamps and article ids.
func WithClock[T any](clock func() time.Time) WorkflowOption[T] {
	return func(c *workflowConfig[T]) {
		c.clock = clock
	}
}

// WithIDAttempts overrides how many identifiers are tried before giving up.
func WithIDAttempts[T any](attempts int) WorkflowOption[T] {
	return func(c *workflowConfig[T]) {
		c.idAttempts = attempts
	}
}

func applyWorkflowOptions[T any](opts []WorkflowOption[T]) workflowConfig[T] {
	cfg := workflowConfig[T]{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	return cfg
}

// entityRef is satisfied by *Article, *Category and *Tag.
type entityRef[T any, ID comparable] interface {
	*T
	domain.WorkflowEntity
	Identity() ID
	SetIdentity(id ID)
}

// workflowService holds the moderation flow shared by every kind. Per-kind
// services embed it and add payload handling and reference checks.
type workflowService[T any, PT entityRef[T, ID], ID comparable] struct {
	BaseService
	kind       domain.Kind
	repo       portsrepo.WorkflowRepository[T, ID]
	guard      workflow.Guard
	cache      listingCache[T]
	ids        idAllocator[ID]
	idAttempts int
}

func newWorkflowService[T any, PT entityRef[T, ID], ID comparable](
	kind domain.Kind,
	repo portsrepo.WorkflowRepository[T, ID],
	ids idAllocator[ID],
	cfg workflowConfig[T],
) *workflowService[T, PT, ID] {
	attempts := cfg.idAttempts
	if attempts <= 0 {
		attempts = defaultIDAttempts
	}
	return &workflowService[T, PT, ID]{
		kind:       kind,
		repo:       repo,
		guard:      workflow.NewGuard(workflow.WithClock(cfg.clock)),
		cache:      newListingCache(kind, cfg.cache),
		ids:        ids,
		idAttempts: attempts,
	}
}

// List returns what actor may see, refined by filter, newest first.
func (s *workflowService[T, PT, ID]) List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]T, error) {
	predicate := workflow.Refine(s.kind, workflow.BuildPredicate(s.kind, actor.Role, actor.AccountID), filter)
	return s.query(ctx, s.cache.key("list", actor, filter), predicate, filter.Page)
}

// ListPublic returns published entities only.
func (s *workflowService[T, PT, ID]) ListPublic(ctx context.Context, filter domain.ListFilter) ([]T, error) {
	predicate := workflow.Refine(s.kind, workflow.PublicPredicate(s.kind), filter)
	return s.query(ctx, s.cache.key("public", domain.GuestActor, filter), predicate, filter.Page)
}

// ListActive returns entities other content may reference.
func (s *workflowService[T, PT, ID]) ListActive(ctx context.Context) ([]T, error) {
	return s.query(ctx, s.cache.key("active", domain.GuestActor, domain.ListFilter{}),
		workflow.ActiveReference(s.kind), domain.Page{})
}

func (s *workflowService[T, PT, ID]) query(ctx context.Context, key string, predicate workflow.Predicate, page domain.Page) ([]T, error) {
	if items, ok := s.cache.get(ctx, key); ok {
		s.LogDebug(ctx, "Listing served from cache", slog.String("key", key))
		return items, nil
	}

	items, err := s.repo.Query(ctx, predicate, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to query listing", slog.String("kind", string(s.kind)))
		return nil, fmt.Errorf("failed to list %s entries: %w", s.kind, err)
	}
	if items == nil {
		items = []T{}
	}

	s.cache.set(ctx, key, items)
	return items, nil
}

// Get returns the entity when actor's listing would contain it.
func (s *workflowService[T, PT, ID]) Get(ctx context.Context, actor domain.Actor, id ID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, id, err)
	}
	if entity == nil || !workflow.BuildPredicate(s.kind, actor.Role, actor.AccountID).Match(PT(entity)) {
		return nil, s.notFound(id)
	}
	return entity, nil
}

// load reads the entity for a mutation. Absent and soft-deleted entities are NotFound.
func (s *workflowService[T, PT, ID]) load(ctx context.Context, id ID) (PT, error) {
	entity, err := s.repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, s.lookupError(ctx, id, err)
	}
	if entity == nil || PT(entity).Workflow().IsDeleted {
		return nil, s.notFound(id)
	}
	return PT(entity), nil
}

func (s *workflowService[T, PT, ID]) lookupError(ctx context.Context, id ID, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.notFound(id)
	}
	s.LogError(ctx, err, "Failed to load entity", slog.String("kind", string(s.kind)), slog.Any("id", id))
	return fmt.Errorf("failed to load %s %v: %w", s.kind, id, err)
}

func (s *workflowService[T, PT, ID]) notFound(id ID) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("%s %v not found", s.kind, id))
}

// statusEdit is the workflow-relevant part of an update payload.
type statusEdit struct {
	status     *domain.Status
	isActive   *bool
	hasContent bool
}

// update runs the shared update flow. applyContent is only called for Staff
// after the field edit guard accepted the change; Admin content is ignored.
func (s *workflowService[T, PT, ID]) update(ctx context.Context, actor domain.Actor, id ID, edit statusEdit, applyContent func(PT) error) (*T, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	state := entity.Workflow()
	statusChange := edit.status != nil && *edit.status != state.Status

	switch actor.Role {
	case domain.RoleAdmin:
		if edit.hasContent {
			s.LogDebug(ctx, "Ignoring content fields in admin update", slog.String("kind", string(s.kind)), slog.Any("id", id))
		}
	case domain.RoleStaff:
		// Anything but a pure status change is an edit, including a resend of the current status.
		if edit.hasContent || edit.isActive != nil || !statusChange {
			if err := s.guard.AuthorizeFieldEdit(s.kind, actor, *state); err != nil {
				return nil, err
			}
		}
	default:
		return nil, s.guard.AuthorizeFieldEdit(s.kind, actor, *state)
	}

	if statusChange {
		if err := s.guard.AuthorizeStatusChange(s.kind, actor, *state, *edit.status); err != nil {
			return nil, err
		}
	}

	if actor.Role == domain.RoleStaff && edit.hasContent && applyContent != nil {
		if err := applyContent(entity); err != nil {
			return nil, err
		}
	}
	if edit.status != nil {
		state.Status = *edit.status
	}
	if edit.isActive != nil && workflow.HasActiveFlag(s.kind) {
		state.IsActive = *edit.isActive
	}
	s.guard.MutationFor(actor).Apply(state)

	if err := s.persist(ctx, entity); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Entity updated", slog.String("kind", string(s.kind)), slog.Any("id", id), slog.String("status", state.Status.String()))
	return (*T)(entity), nil
}

// Transition applies a named action.
func (s *workflowService[T, PT, ID]) Transition(ctx context.Context, actor domain.Actor, id ID, action workflow.Action, reason string) (domain.Status, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return 0, err
	}
	state := entity.Workflow()
	from := state.Status

	to, err := s.guard.AuthorizeAction(s.kind, actor, *state, action)
	if err != nil {
		return 0, err
	}

	state.Status = to
	s.guard.MutationFor(actor).Apply(state)
	if err := s.persist(ctx, entity); err != nil {
		return 0, err
	}

	attrs := []any{
		slog.String("kind", string(s.kind)), slog.Any("id", id), slog.String("action", string(action)),
		slog.String("from", from.String()), slog.String("to", to.String()),
	}
	if reason != "" {
		attrs = append(attrs, slog.String("reason", reason))
	}
	s.LogInfo(ctx, "Workflow transition applied", attrs...)
	return to, nil
}

// Delete soft deletes the entity.
func (s *workflowService[T, PT, ID]) Delete(ctx context.Context, actor domain.Actor, id ID) error {
	if err := s.guard.AuthorizeDelete(actor.Role); err != nil {
		return err
	}
	entity, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	s.guard.DeletionFor(actor).Apply(entity.Workflow())
	if err := s.persist(ctx, entity); err != nil {
		return err
	}
	s.LogInfo(ctx, "Entity soft deleted", slog.String("kind", string(s.kind)), slog.Any("id", id))
	return nil
}

// authorizeCreate resolves the initial status, defaulting to Draft.
func (s *workflowService[T, PT, ID]) authorizeCreate(actor domain.Actor, requested *domain.Status) (domain.Status, error) {
	status := domain.StatusDraft
	if requested != nil {
		status = *requested
	}
	return s.guard.AuthorizeCreate(s.kind, actor.Role, status)
}

// stampCreate fills the workflow state of a new entity.
func (s *workflowService[T, PT, ID]) stampCreate(entity PT, actor domain.Actor, status domain.Status) {
	state := entity.Workflow()
	state.Status = status
	state.CreatedByID = actor.AccountID
	state.CreatedAt = s.guard.Now()
	state.IsDeleted = false
	state.Version = 1
}

// insert stores a new entity under the supplied id, or under a generated one
// when supplied is nil, retrying on collisions within the attempt budget.
func (s *workflowService[T, PT, ID]) insert(ctx context.Context, entity PT, supplied *ID) error {
	if supplied != nil {
		exists, err := s.repo.Exists(ctx, *supplied)
		if err != nil {
			return fmt.Errorf("failed to check %s id: %w", s.kind, err)
		}
		if exists {
			return apperrors.NewConflictError(fmt.Sprintf("%s %v already exists", s.kind, *supplied))
		}
		entity.SetIdentity(*supplied)
		if err := s.repo.Create(ctx, *entity); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewConflictError(fmt.Sprintf("%s %v already exists", s.kind, *supplied))
			}
			return fmt.Errorf("failed to create %s: %w", s.kind, err)
		}
		return s.cache.invalidate(ctx)
	}

	for attempt := 0; attempt < s.idAttempts; attempt++ {
		candidate, err := s.ids.Candidate(ctx, attempt)
		if err != nil {
			return err
		}
		exists, err := s.repo.Exists(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to check %s id: %w", s.kind, err)
		}
		if exists {
			continue
		}
		entity.SetIdentity(candidate)
		err = s.repo.Create(ctx, *entity)
		if errors.Is(err, apperrors.ErrDuplicate) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", s.kind, err)
		}
		return s.cache.invalidate(ctx)
	}

	s.LogWarn(ctx, "Identifier generation exhausted", slog.String("kind", string(s.kind)), slog.Int("attempts", s.idAttempts))
	return fmt.Errorf("%w: no free %s id after %d attempts", apperrors.ErrIDGenerationExhausted, s.kind, s.idAttempts)
}

// persist stores a mutated entity and drops the kind's listings.
func (s *workflowService[T, PT, ID]) persist(ctx context.Context, entity PT) error {
	if err := s.repo.Update(ctx, *entity); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to persist entity", slog.String("kind", string(s.kind)), slog.Any("id", entity.Identity()))
		return fmt.Errorf("failed to update %s: %w", s.kind, err)
	}
	entity.Workflow().Version++
	return s.cache.invalidate(ctx)
}
