package depot

import (
	"context"
)

type depotCtx struct{}

func ContextWithDepot(ctx context.Context, d Depot) context.Context {
	return context.WithValue(ctx, depotCtx{}, d)
}

func FromContext(ctx context.Context) (Depot, bool) {
	d, ok := ctx.Value(depotCtx{}).(Depot)
	return d, ok
}

type principalCtx struct{}

// Principal is an unauthenticated identity claim carried with a request.
// Verifying it is the job of whatever Authorizer is plugged in.
type Principal string

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtx{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtx{}).(Principal)
	return p, ok
}
