package depot

import (
	"context"
	"fmt"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

type DownloadPackage struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}/{name}/{version}/{release}/download"`

	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Release string `name:"release" in:"path"`
}

func (req *DownloadPackage) Output(ctx context.Context) (any, error) {
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

	archive, record, err := d.Packages().Open(ctx, ident)
	if err != nil {
		return nil, err
	}

	filename := record.Ident.ArchiveFilename()

	return courierhttp.Wrap(
		archive,
		courierhttp.WithMetadata("Content-Type", "application/gzip"),
		courierhttp.WithMetadata("X-Filename", filename),
		courierhttp.WithMetadata("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename)),
		courierhttp.WithMetadata("ETag", record.Checksum.String()),
	), nil
}
