package repositories

import (
	"context"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

// WorkflowReader defines read operations shared by article, category and tag storage.
// Lookups by id return soft-deleted rows too; callers decide how to treat them.
type WorkflowReader[T any, ID comparable] interface {
	// FindByID retrieves an entity or apperrors.ErrNotFound when absent.
	FindByID(ctx context.Context, id ID) (*T, error)

	// FindByIDForUpdate reads the entity fresh from storage, bypassing any cache,
	// together with the version token the subsequent Update is conditioned on.
	FindByIDForUpdate(ctx context.Context, id ID) (*T, error)

	// Query returns the entities matching filter, newest first.
	Query(ctx context.Context, filter workflow.Predicate, page domain.Page) ([]T, error)

	// Exists reports whether id is taken, including soft-deleted rows.
	Exists(ctx context.Context, id ID) (bool, error)
}

// WorkflowWriter defines write operations shared by workflow kinds.
type WorkflowWriter[T any] interface {
	// Create inserts a new entity. A duplicate id yields apperrors.ErrDuplicate.
	Create(ctx context.Context, entity T) error

	// Update persists the entity if its version still matches storage and bumps the version.
	// A stale version yields apperrors.ErrConflict.
	Update(ctx context.Context, entity T) error
}

// SequenceReader is implemented by kinds with integer identifiers.
type SequenceReader interface {
	// MaxID returns the highest id ever used, soft-deleted rows included. Zero when empty.
	MaxID(ctx context.Context) (int, error)
}

// WorkflowRepository combines reader and writer for one kind.
type WorkflowRepository[T any, ID comparable] interface {
	WorkflowReader[T, ID]
	WorkflowWriter[T]
}

// ArticleRepositoryFacade is the article storage contract.
type ArticleRepositoryFacade interface {
	WorkflowRepository[domain.Article, string]
}

// CategoryRepositoryFacade is the category storage contract.
type CategoryRepositoryFacade interface {
	WorkflowRepository[domain.Category, int]
	SequenceReader
}

// TagRepositoryFacade is the tag storage contract.
type TagRepositoryFacade interface {
	WorkflowRepository[domain.Tag, int]
	SequenceReader
}
