package workflow

import (
	"time"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// Guard decides whether an actor may perform an operation on one entity and
// derives the resulting mutation. It never performs the mutation itself.
type Guard struct {
	now func() time.Time
}

// GuardOption configures the guard.
type GuardOption func(*Guard)

// WithClock overrides the clock used for derived timestamps.
func WithClock(clock func() time.Time) GuardOption {
	return func(g *Guard) {
		if clock != nil {
			g.now = clock
		}
	}
}

// NewGuard constructs a Guard.
func NewGuard(opts ...GuardOption) Guard {
	g := Guard{now: time.Now}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// AuthorizeCreate returns the initial status an actor may create an entity with.
func (g Guard) AuthorizeCreate(kind domain.Kind, role domain.Role, requested domain.Status) (domain.Status, error) {
	rule := ruleFor(kind)
	switch role {
	case domain.RoleStaff:
	case domain.RoleAdmin:
		if !rule.adminCanCreate {
			return 0, apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole,
				"Admin cannot create %s entries. Only Staff can create them.", kind)
		}
	default:
		return 0, apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole,
			"%s accounts cannot create %s entries", role, kind)
	}
	if requested != domain.StatusDraft && requested != domain.StatusPending {
		return 0, apperrors.Deny(apperrors.ErrInvalidInitialStatus, apperrors.ReasonInitialStatus,
			"new %s entries can only start as Draft (1) or Pending (2), got %d", kind, int(requested))
	}
	return requested, nil
}

// AuthorizeFieldEdit decides whether actor may change content fields of the entity.
func (g Guard) AuthorizeFieldEdit(kind domain.Kind, actor domain.Actor, state domain.WorkflowState) error {
	if state.IsDeleted {
		return deletedDenial(kind)
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole,
			"Admin can only change status and activation of a %s, not its content", kind)
	case domain.RoleStaff:
		if state.CreatedByID != actor.AccountID {
			return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonOwnership,
				"You can only edit %s entries that you created.", kind)
		}
		if state.Status != domain.StatusDraft && state.Status != domain.StatusPending {
			return apperrors.Deny(apperrors.ErrLockedAfterApproval, apperrors.ReasonStatusLock,
				"Cannot update a %s that is %s.", kind, state.Status)
		}
		return nil
	}
	return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole, "%s accounts cannot edit %s entries", actor.Role, kind)
}

// AuthorizeStatusChange decides whether actor may move the entity to requested.
func (g Guard) AuthorizeStatusChange(kind domain.Kind, actor domain.Actor, state domain.WorkflowState, requested domain.Status) error {
	if state.IsDeleted {
		return deletedDenial(kind)
	}
	if !IsLegalStatus(kind, requested) {
		return apperrors.Deny(apperrors.ErrUnknownStatus, apperrors.ReasonTransition,
			"status %d is not a legal %s status", int(requested), kind)
	}
	switch actor.Role {
	case domain.RoleStaff:
		if state.CreatedByID != actor.AccountID {
			return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonOwnership,
				"You can only submit %s entries that you created.", kind)
		}
		if state.Status != domain.StatusDraft || requested != domain.StatusPending {
			return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole,
				"Staff can only submit a Draft %s for review (current status: %s, requested: %s).", kind, state.Status, requested)
		}
		return nil
	case domain.RoleAdmin:
		if err := CheckTransition(kind, state.Status, requested); err != nil {
			return err
		}
		rule := ruleFor(kind)
		if state.Status == domain.StatusPending && rule.adminFromPending != nil && !rule.adminFromPending[requested] {
			return apperrors.Deny(apperrors.ErrIllegalTransition, apperrors.ReasonTransition,
				"Admin can only change a Pending %s to Published (4) or Draft (1).", kind)
		}
		if state.Status == domain.StatusDraft && state.CreatedByID != actor.AccountID {
			return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonOwnership,
				"Only the author can submit a Draft %s.", kind)
		}
		return nil
	}
	return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole, "%s accounts cannot change %s status", actor.Role, kind)
}

// AuthorizeAction resolves a named action and checks it like AuthorizeStatusChange,
// producing the "Only X entries can be Y" message when the current status does not fit.
func (g Guard) AuthorizeAction(kind domain.Kind, actor domain.Actor, state domain.WorkflowState, action Action) (domain.Status, error) {
	from, to, ok := ActionTarget(action)
	if !ok {
		return 0, apperrors.NewValidationError("action", "unknown action "+string(action))
	}
	if state.IsDeleted {
		return 0, deletedDenial(kind)
	}
	if actor.Role != domain.RoleAdmin && action != ActionSubmit {
		return 0, apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole,
			"Only Admin can %s %s entries.", action, kind)
	}
	if !IsLegalTransition(kind, from, to) {
		return 0, apperrors.Deny(apperrors.ErrIllegalTransition, apperrors.ReasonTransition,
			"%s entries cannot be %s.", kind, action.pastTense())
	}
	if state.Status != from {
		return 0, apperrors.Deny(apperrors.ErrIllegalTransition, apperrors.ReasonTransition,
			"Only %s %s entries can be %s. Current status: %s", from, kind, action.pastTense(), state.Status)
	}
	if err := g.AuthorizeStatusChange(kind, actor, state, to); err != nil {
		return 0, err
	}
	return to, nil
}

// AuthorizeDelete allows soft delete for Admin only.
func (g Guard) AuthorizeDelete(role domain.Role) error {
	if role != domain.RoleAdmin {
		return apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole, "Only Admin can delete content.")
	}
	return nil
}

func deletedDenial(kind domain.Kind) error {
	return apperrors.Deny(apperrors.ErrNotFound, apperrors.ReasonNotFound, "%s not found", kind)
}

// Mutation is the side effect of an accepted edit or transition.
type Mutation struct {
	UpdatedBy  int
	ModifiedAt time.Time
}

// Apply stamps the mutation on state. CreatedByID is never touched.
func (m Mutation) Apply(state *domain.WorkflowState) {
	updatedBy := m.UpdatedBy
	modifiedAt := m.ModifiedAt
	state.UpdatedByID = &updatedBy
	state.ModifiedAt = &modifiedAt
}

// Deletion is the side effect of an accepted soft delete.
type Deletion struct {
	Mutation
	DeletedBy int
	DeletedAt time.Time
}

// Apply marks state deleted.
func (d Deletion) Apply(state *domain.WorkflowState) {
	d.Mutation.Apply(state)
	deletedBy := d.DeletedBy
	deletedAt := d.DeletedAt
	state.IsDeleted = true
	state.DeletedBy = &deletedBy
	state.DeletedAt = &deletedAt
}

// MutationFor derives the mutation stamp for actor.
func (g Guard) MutationFor(actor domain.Actor) Mutation {
	return Mutation{UpdatedBy: actor.AccountID, ModifiedAt: g.now().UTC()}
}

// DeletionFor derives the soft delete stamp for actor.
func (g Guard) DeletionFor(actor domain.Actor) Deletion {
	m := g.MutationFor(actor)
	return Deletion{Mutation: m, DeletedBy: actor.AccountID, DeletedAt: m.ModifiedAt}
}

// Now exposes the guard clock so services stamp creation times consistently.
func (g Guard) Now() time.Time { return g.now().UTC() }
