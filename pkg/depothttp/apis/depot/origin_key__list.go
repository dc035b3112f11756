package depot

import (
	"context"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

type ListOriginKeys struct {
	courierhttp.MethodGet `path:"/origins/{origin}/keys"`

	Origin string `name:"origin" in:"path"`
}

func (req *ListOriginKeys) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	revisions, err := d.Keys().Revisions(ctx, req.Origin)
	if err != nil {
		return nil, err
	}

	return &depot.RevisionList{Origin: req.Origin, Revisions: revisions}, nil
}
