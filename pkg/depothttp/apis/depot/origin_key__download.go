package depot

import (
	"context"
	"fmt"
	"io"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

func wrapKey(key depot.OriginKey, content io.ReadCloser) any {
	filename := key.Filename()

	return courierhttp.Wrap(
		content,
		courierhttp.WithMetadata("Content-Type", "text/plain; charset=utf-8"),
		courierhttp.WithMetadata("X-Filename", filename),
		courierhttp.WithMetadata("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename)),
	)
}

type DownloadOriginKey struct {
	courierhttp.MethodGet `path:"/origins/{origin}/keys/{revision}"`

	Origin   string `name:"origin" in:"path"`
	Revision string `name:"revision" in:"path"`
}

func (req *DownloadOriginKey) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	content, err := d.Keys().Open(ctx, req.Origin, req.Revision)
	if err != nil {
		return nil, err
	}

	return wrapKey(depot.OriginKey{Origin: req.Origin, Revision: req.Revision}, content), nil
}

type DownloadLatestOriginKey struct {
	courierhttp.MethodGet `path:"/origins/{origin}/keys/latest"`

	Origin string `name:"origin" in:"path"`
}

func (req *DownloadLatestOriginKey) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	revision, err := d.Keys().Latest(ctx, req.Origin)
	if err != nil {
		return nil, err
	}

	content, err := d.Keys().Open(ctx, req.Origin, revision)
	if err != nil {
		return nil, err
	}

	return wrapKey(depot.OriginKey{Origin: req.Origin, Revision: revision}, content), nil
}
