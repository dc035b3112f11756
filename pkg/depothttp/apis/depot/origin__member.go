package depot

import (
	"context"
	"net/http"

	"github.com/octohelm/courier/pkg/courierhttp"
)

type AddOriginMember struct {
	courierhttp.MethodPut `path:"/origins/{origin}/users/{user}"`

	Principal

	Origin string `name:"origin" in:"path"`
	User   string `name:"user" in:"path"`
}

func (req *AddOriginMember) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx = req.InjectContext(ctx)

	if err := d.Origins().AddMember(ctx, req.Origin, req.User); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusNoContent),
	), nil
}

type RemoveOriginMember struct {
	courierhttp.MethodDelete `path:"/origins/{origin}/users/{user}"`

	Principal

	Origin string `name:"origin" in:"path"`
	User   string `name:"user" in:"path"`
}

func (req *RemoveOriginMember) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ctx = req.InjectContext(ctx)

	if err := d.Origins().RemoveMember(ctx, req.Origin, req.User); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusNoContent),
	), nil
}
