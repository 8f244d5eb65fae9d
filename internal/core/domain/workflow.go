package domain

import (
	"fmt"
	"time"
)

// Kind identifies one of the entity types sharing the moderation workflow.
type Kind string

const (
	KindArticle  Kind = "article"
	KindCategory Kind = "category"
	KindTag      Kind = "tag"
)

// Status is the moderation lifecycle stage. Codes are shared by all kinds.
type Status int

const (
	StatusDraft     Status = 1
	StatusPending   Status = 2
	StatusApproved  Status = 3
	StatusPublished Status = 4
	StatusArchived  Status = 5
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusPublished:
		return "Published"
	case StatusArchived:
		return "Archived"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Role is the sole authorization axis of an account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleGuest Role = "GUEST"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleGuest
}

// Actor is the already authenticated caller of a workflow operation.
// Guests carry AccountID 0.
type Actor struct {
	Role      Role
	AccountID int
}

// GuestActor is the identity used for unauthenticated reads.
var GuestActor = Actor{Role: RoleGuest}

// WorkflowState is the part of an entity the moderation workflow reasons about.
type WorkflowState struct {
	Status      Status     `json:"status"`
	CreatedByID int        `json:"createdById"`
	UpdatedByID *int       `json:"updatedById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModifiedAt  *time.Time `json:"modifiedAt,omitempty"`
	IsActive    bool       `json:"isActive"`
	SoftDelete
	Version int64 `json:"version"`
}

// Workflow returns the embedded state so generic code can mutate it in place.
func (s *WorkflowState) Workflow() *WorkflowState { return s }

// WorkflowEntity is implemented by pointers to Article, Category and Tag.
type WorkflowEntity interface {
	WorkflowKind() Kind
	Workflow() *WorkflowState
	FieldValue(field Field) any
}

// Field names an entity attribute that listing predicates can test.
type Field string

const (
	FieldStatus     Field = "status"
	FieldCreatedBy  Field = "created_by"
	FieldIsDeleted  Field = "is_deleted"
	FieldIsActive   Field = "is_active"
	FieldCreatedAt  Field = "created_at"
	FieldTitle      Field = "title"
	FieldContent    Field = "content"
	FieldName       Field = "name"
	FieldCategoryID Field = "category_id"
	FieldTagIDs     Field = "tag_ids"
)

// stateFieldValue resolves the fields every workflow entity has.
func (s *WorkflowState) stateFieldValue(field Field) (any, bool) {
	switch field {
	case FieldStatus:
		return s.Status, true
	case FieldCreatedBy:
		return s.CreatedByID, true
	case FieldIsDeleted:
		return s.IsDeleted, true
	case FieldIsActive:
		return s.IsActive, true
	case FieldCreatedAt:
		return s.CreatedAt, true
	}
	return nil, false
}

// ListFilter holds the caller supplied refinements of a listing.
type ListFilter struct {
	Query      string
	CategoryID *int
	TagID      *int
	Status     *Status
	CreatedBy  *int
	From       *time.Time
	To         *time.Time
	Page
}

// Key renders the filter deterministically for cache keys.
func (f ListFilter) Key() string {
	opt := func(v *int) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	}
	tm := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.UTC().Format(time.RFC3339)
	}
	status := "-"
	if f.Status != nil {
		status = fmt.Sprint(int(*f.Status))
	}
	return fmt.Sprintf("q=%s|c=%s|t=%s|s=%s|by=%s|from=%s|to=%s|l=%d|o=%d",
		f.Query, opt(f.CategoryID), opt(f.TagID), status, opt(f.CreatedBy), tm(f.From), tm(f.To), f.Limit, f.Offset)
}
