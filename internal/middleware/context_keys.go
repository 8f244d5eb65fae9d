package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

type contextKey string

const (
	// loggerCtxKey stores the request-scoped *slog.Logger in the request context.
	loggerCtxKey = contextKey("logger")
	// actorKey stores the authenticated domain.Actor in the request context.
	actorKey = contextKey("actor")
)

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromCtx returns the authenticated actor or false when the request is anonymous.
func GetActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// ActorFromContext returns the caller of the request, GuestActor when anonymous.
func ActorFromContext(c *gin.Context) domain.Actor {
	if actor, ok := GetActorFromCtx(c.Request.Context()); ok {
		return actor
	}
	return domain.GuestActor
}
