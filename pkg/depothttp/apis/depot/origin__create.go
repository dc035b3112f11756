package depot

import (
	"context"
	"net/http"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

// Principal carries the caller identity on mutating origin operations.
// There is no authentication layer yet; the header is trusted as-is and
// feeds the pluggable authorizer.
type Principal struct {
	Principal string `name:"X-Depot-Principal,omitempty" in:"header"`
}

func (p Principal) InjectContext(ctx context.Context) context.Context {
	if p.Principal == "" {
		return ctx
	}
	return depot.ContextWithPrincipal(ctx, depot.Principal(p.Principal))
}

type CreateOrigin struct {
	courierhttp.MethodPost `path:"/origins/{origin}"`

	Principal

	Origin string `name:"origin" in:"path"`
}

func (req *CreateOrigin) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx = req.InjectContext(ctx)

	if err := d.Origins().Create(ctx, req.Origin, depot.Principal(req.Principal.Principal)); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusCreated),
	), nil
}

type DeleteOrigin struct {
	courierhttp.MethodDelete `path:"/origins/{origin}"`

	Principal

	Origin string `name:"origin" in:"path"`
}

func (req *DeleteOrigin) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx = req.InjectContext(ctx)

	if err := d.Origins().Delete(ctx, req.Origin); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusNoContent),
	), nil
}
