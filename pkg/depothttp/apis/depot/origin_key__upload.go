package depot

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/octohelm/courier/pkg/courierhttp"
)

type UploadOriginKey struct {
	courierhttp.MethodPost `path:"/origins/{origin}/keys/{revision}"`

	Origin   string `name:"origin" in:"path"`
	Revision string `name:"revision" in:"path"`

	Key io.ReadCloser `in:"body"`
}

func (req *UploadOriginKey) Output(ctx context.Context) (any, error) {
	defer req.Key.Close()

	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.Keys().Put(ctx, req.Origin, req.Revision, req.Key); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusCreated),
		courierhttp.WithMetadata("Location", fmt.Sprintf("/v1/origins/%s/keys/%s", req.Origin, req.Revision)),
	), nil
}

type UploadOriginSecretKey struct {
	courierhttp.MethodPost `path:"/origins/{origin}/secret_keys/{revision}"`

	Origin   string `name:"origin" in:"path"`
	Revision string `name:"revision" in:"path"`

	Key io.ReadCloser `in:"body"`
}

func (req *UploadOriginSecretKey) Output(ctx context.Context) (any, error) {
	defer req.Key.Close()

	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(req.Key)
	if err != nil {
		return nil, err
	}

	if err := d.Keys().PutSecret(ctx, req.Origin, req.Revision, content); err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusCreated),
	), nil
}
