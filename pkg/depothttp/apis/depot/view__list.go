package depot

import (
	"context"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

type ListViews struct {
	courierhttp.MethodGet `path:"/views"`
}

func (req *ListViews) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	views, err := d.Views().All(ctx)
	if err != nil {
		return nil, err
	}

	return &depot.ViewList{Views: views}, nil
}
