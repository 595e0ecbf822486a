package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

type actorKey struct{}

// WithActor кладёт вызывающего пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor достаёт актора, определённого Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}

// GetUserID ID аккаунта вызывающего пользователя
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return actor.UserID, true
}
