package depot

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

type UploadPackage struct {
	courierhttp.MethodPost `path:"/pkgs/{origin}/{name}/{version}/{release}"`

	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Release string `name:"release" in:"path"`

	Checksum depot.Checksum `name:"checksum" in:"query"`
	Archive  io.ReadCloser  `in:"body"`
}

func (req *UploadPackage) Output(ctx context.Context) (any, error) {
	defer req.Archive.Close()

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

	record, err := d.Packages().Upload(ctx, ident, req.Checksum.Digest(), req.Archive)
	if err != nil {
		return nil, err
	}

	return courierhttp.Wrap[any](nil,
		courierhttp.WithStatusCode(http.StatusCreated),
		courierhttp.WithMetadata("Location", fmt.Sprintf("/v1/pkgs/%s/download", record.Ident)),
	), nil
}
