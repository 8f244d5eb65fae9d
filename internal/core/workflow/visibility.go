package workflow

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

func notDeleted() Predicate {
	return Eq(domain.FieldIsDeleted, false)
}

// BuildPredicate returns the listing predicate a caller's role authorizes.
// The shape is identical for every kind; Archived never matches because no
// role lists it by default.
func BuildPredicate(kind domain.Kind, role domain.Role, callerAccountID int) Predicate {
	_ = ruleFor(kind)
	switch role {
	case domain.RoleAdmin:
		return And(notDeleted(), StatusIn(domain.StatusPending, domain.StatusApproved, domain.StatusPublished))
	case domain.RoleStaff:
		return And(notDeleted(), Or(
			StatusIn(domain.StatusPublished),
			And(StatusIn(domain.StatusDraft, domain.StatusPending), Eq(domain.FieldCreatedBy, callerAccountID)),
		))
	default:
		return PublicPredicate(kind)
	}
}

// PublicPredicate is what guests and unauthenticated readers see.
func PublicPredicate(kind domain.Kind) Predicate {
	_ = ruleFor(kind)
	return And(notDeleted(), StatusIn(domain.StatusPublished))
}

// ActiveReference selects entities eligible to be attached to another one.
// It ignores the caller's role.
func ActiveReference(kind domain.Kind) Predicate {
	p := And(notDeleted(), StatusIn(domain.StatusApproved, domain.StatusPublished))
	if HasActiveFlag(kind) {
		p.Children = append(p.Children, Eq(domain.FieldIsActive, true))
	}
	return p
}

// Refine AND-composes caller supplied filters onto base.
func Refine(kind domain.Kind, base Predicate, f domain.ListFilter) Predicate {
	p := And(base)
	if f.Query != "" {
		p.Children = append(p.Children, Contains(f.Query, searchFields(kind)...))
	}
	if f.Status != nil {
		p.Children = append(p.Children, Eq(domain.FieldStatus, *f.Status))
	}
	if f.CreatedBy != nil {
		p.Children = append(p.Children, Eq(domain.FieldCreatedBy, *f.CreatedBy))
	}
	if f.From != nil {
		p.Children = append(p.Children, Gte(domain.FieldCreatedAt, *f.From))
	}
	if f.To != nil {
		p.Children = append(p.Children, Lte(domain.FieldCreatedAt, *f.To))
	}
	if kind == domain.KindArticle {
		if f.CategoryID != nil {
			p.Children = append(p.Children, Eq(domain.FieldCategoryID, *f.CategoryID))
		}
		if f.TagID != nil {
			p.Children = append(p.Children, Has(domain.FieldTagIDs, *f.TagID))
		}
	}
	return p
}

func searchFields(kind domain.Kind) []domain.Field {
	if kind == domain.KindArticle {
		return []domain.Field{domain.FieldTitle, domain.FieldContent}
	}
	return []domain.Field{domain.FieldName, domain.FieldContent}
}
