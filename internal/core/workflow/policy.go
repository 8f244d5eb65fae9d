// Package workflow holds the moderation rules shared by articles, categories
// and tags: the legal status table, listing visibility and the per-operation
// authorization guard.
package workflow

import (
	"fmt"
	"strings"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// Action is a named status transition.
type Action string

const (
	ActionSubmit    Action = "submit"
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionPublish   Action = "publish"
	ActionArchive   Action = "archive"
	ActionUnpublish Action = "unpublish"
)

type transition struct {
	from, to domain.Status
}

// kindRule is the small table of kind specific constants.
type kindRule struct {
	statuses       []domain.Status
	transitions    map[transition]bool
	adminCanCreate bool
	hasActiveFlag  bool
	// adminFromPending restricts where an admin may move a Pending entity. Nil means no extra restriction.
	adminFromPending map[domain.Status]bool
}

var sharedTransitions = []transition{
	{domain.StatusDraft, domain.StatusPending},
	{domain.StatusPending, domain.StatusApproved},
	{domain.StatusPending, domain.StatusPublished},
	{domain.StatusPending, domain.StatusDraft},
}

var articleOnlyTransitions = []transition{
	{domain.StatusPublished, domain.StatusApproved},
	{domain.StatusPublished, domain.StatusArchived},
}

var actionTransitions = map[Action]transition{
	ActionSubmit:    {domain.StatusDraft, domain.StatusPending},
	ActionApprove:   {domain.StatusPending, domain.StatusApproved},
	ActionReject:    {domain.StatusPending, domain.StatusDraft},
	ActionPublish:   {domain.StatusPending, domain.StatusPublished},
	ActionArchive:   {domain.StatusPublished, domain.StatusArchived},
	ActionUnpublish: {domain.StatusPublished, domain.StatusApproved},
}

var rules = map[domain.Kind]kindRule{
	domain.KindArticle: {
		statuses:       []domain.Status{domain.StatusDraft, domain.StatusPending, domain.StatusApproved, domain.StatusPublished, domain.StatusArchived},
		transitions:    transitionSet(sharedTransitions, articleOnlyTransitions),
		adminCanCreate: true,
	},
	domain.KindCategory: referenceKindRule(),
	domain.KindTag:      referenceKindRule(),
}

func referenceKindRule() kindRule {
	return kindRule{
		statuses:      []domain.Status{domain.StatusDraft, domain.StatusPending, domain.StatusApproved, domain.StatusPublished},
		transitions:   transitionSet(sharedTransitions),
		hasActiveFlag: true,
		adminFromPending: map[domain.Status]bool{
			domain.StatusPublished: true,
			domain.StatusDraft:     true,
		},
	}
}

func transitionSet(groups ...[]transition) map[transition]bool {
	set := make(map[transition]bool)
	for _, group := range groups {
		for _, t := range group {
			set[t] = true
		}
	}
	return set
}

func ruleFor(kind domain.Kind) kindRule {
	rule, ok := rules[kind]
	if !ok {
		panic(fmt.Sprintf("workflow: unknown kind %q", kind))
	}
	return rule
}

// LegalStatuses returns the status codes an entity of kind may hold.
func LegalStatuses(kind domain.Kind) []domain.Status {
	statuses := ruleFor(kind).statuses
	out := make([]domain.Status, len(statuses))
	copy(out, statuses)
	return out
}

// IsLegalStatus reports whether status belongs to the legal set of kind.
func IsLegalStatus(kind domain.Kind, status domain.Status) bool {
	for _, s := range ruleFor(kind).statuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsLegalTransition reports whether (from, to) is in the transition table of kind.
func IsLegalTransition(kind domain.Kind, from, to domain.Status) bool {
	return ruleFor(kind).transitions[transition{from, to}]
}

// CheckTransition is IsLegalTransition returning the typed error.
func CheckTransition(kind domain.Kind, from, to domain.Status) error {
	if !IsLegalStatus(kind, from) {
		return apperrors.Deny(apperrors.ErrUnknownStatus, apperrors.ReasonTransition,
			"status %d is not a legal %s status", int(from), kind)
	}
	if !IsLegalStatus(kind, to) {
		return apperrors.Deny(apperrors.ErrUnknownStatus, apperrors.ReasonTransition,
			"status %d is not a legal %s status", int(to), kind)
	}
	if !IsLegalTransition(kind, from, to) {
		return apperrors.Deny(apperrors.ErrIllegalTransition, apperrors.ReasonTransition,
			"cannot move %s from %s to %s", kind, from, to)
	}
	return nil
}

// HasActiveFlag reports whether kind carries the isActive toggle.
func HasActiveFlag(kind domain.Kind) bool { return ruleFor(kind).hasActiveFlag }

// ParseAction resolves a named action.
func ParseAction(name string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := actionTransitions[action]; !ok {
		return "", apperrors.NewValidationError("action", fmt.Sprintf("unknown action %q", name))
	}
	return action, nil
}

// ActionTarget returns the fixed (from, to) pair of an action.
func ActionTarget(action Action) (from, to domain.Status, ok bool) {
	t, ok := actionTransitions[action]
	return t.from, t.to, ok
}

// pastTense is used in denial messages ("Only Draft articles can be submitted").
func (a Action) pastTense() string {
	switch a {
	case ActionSubmit:
		return "submitted"
	case ActionApprove:
		return "approved"
	case ActionReject:
		return "rejected"
	case ActionPublish:
		return "published"
	case ActionArchive:
		return "archived"
	case ActionUnpublish:
		return "unpublished"
	}
	return string(a)
}
