package services

import (
	"context"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

// WorkflowReaderSvc defines read operations shared by every moderated kind.
type WorkflowReaderSvc[T any, ID comparable] interface {
	// List returns the entities visible to actor, refined by filter, newest first.
	List(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]T, error)

	// ListPublic returns published entities, refined by filter.
	ListPublic(ctx context.Context, filter domain.ListFilter) ([]T, error)

	// ListActive returns entities that may be referenced by other content.
	ListActive(ctx context.Context) ([]T, error)

	// Get returns one entity if it exists, is not deleted and is visible to actor.
	Get(ctx context.Context, actor domain.Actor, id ID) (*T, error)
}

// WorkflowWriterSvc defines the guarded mutations shared by every moderated kind.
type WorkflowWriterSvc[T any, ID comparable, P any] interface {
	// Create stores a new entity owned by actor.
	Create(ctx context.Context, actor domain.Actor, payload P) (*T, error)

	// Update applies payload to the entity as far as actor's role allows.
	Update(ctx context.Context, actor domain.Actor, id ID, payload P) (*T, error)

	// Transition applies a named action and returns the resulting status.
	Transition(ctx context.Context, actor domain.Actor, id ID, action workflow.Action, reason string) (domain.Status, error)

	// Delete soft deletes the entity.
	Delete(ctx context.Context, actor domain.Actor, id ID) error
}

// WorkflowSvc combines reader and writer for one kind.
type WorkflowSvc[T any, ID comparable, P any] interface {
	WorkflowReaderSvc[T, ID]
	WorkflowWriterSvc[T, ID, P]
}

// ArticleSvcFacade manages news articles.
type ArticleSvcFacade interface {
	WorkflowSvc[domain.Article, string, domain.ArticlePayload]
}

// CategorySvcFacade manages categories.
type CategorySvcFacade interface {
	WorkflowSvc[domain.Category, int, domain.CategoryPayload]
}

// TagSvcFacade manages tags.
type TagSvcFacade interface {
	WorkflowSvc[domain.Tag, int, domain.TagPayload]
}
