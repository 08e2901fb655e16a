package directory

import "context"

type actorKey struct{}

// DefaultActor autor de las entradas de bitácora cuando la petición no trae uno.
const DefaultActor = "Director(a)"

// WithActor asocia al contexto el nombre de quien ejecuta las acciones.
func WithActor(ctx context.Context, actor string) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom nombre del actor del contexto o fallback.
func ActorFrom(ctx context.Context, fallback string) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return fallback
}
