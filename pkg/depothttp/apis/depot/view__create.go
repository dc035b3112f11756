package depot

import (
	"context"
	"net/http"

	"github.com/octohelm/courier/pkg/courierhttp"
)

type CreateView struct {
	courierhttp.MethodPost `path:"/views/{view}"`

	View string `name:"view" in:"path"`
}

func (req *CreateView) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.Views().Create(ctx, req.View); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusCreated),
	), nil
}
