package depot

import (
	"context"
	"net/http"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

type PromotePackage struct {
	courierhttp.MethodPost `path:"/views/{view}/pkgs/{origin}/{name}/{version}/{release}/promote"`

	View    string `name:"view" in:"path"`
	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Release string `name:"release" in:"path"`
}

func (req *PromotePackage) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ident := depot.Ident{
		Origin:  req.Origin,
		Name:    req.Name,
		Version: req.Version,
		Release: req.Release,
	}

	if err := d.Views().Promote(ctx, req.View, ident); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusNoContent),
	), nil
}
