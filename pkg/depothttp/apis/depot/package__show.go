package depot

import (
	"context"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

func wrapRecord(record *depot.Record) any {
	return courierhttp.Wrap(
		record,
		courierhttp.WithMetadata("ETag", record.Checksum.String()),
	)
}

type ShowPackage struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}/{name}/{version}/{release}"`

	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Release string `name:"release" in:"path"`
}

func (req *ShowPackage) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := d.Packages().Get(ctx, depot.Ident{
		Origin:  req.Origin,
		Name:    req.Name,
		Version: req.Version,
		Release: req.Release,
	})
	if err != nil {
		return nil, err
	}

	return wrapRecord(record), nil
}

type ShowLatestPackage struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}/{name}/latest"`

	Origin string `name:"origin" in:"path"`
	Name   string `name:"name" in:"path"`
}

func (req *ShowLatestPackage) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := d.Packages().Latest(ctx, depot.Ident{
		Origin: req.Origin,
		Name:   req.Name,
	})
	if err != nil {
		return nil, err
	}

	return wrapRecord(record), nil
}

type ShowLatestPackageRelease struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}/{name}/{version}/latest"`

	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
}

func (req *ShowLatestPackageRelease) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := d.Packages().Latest(ctx, depot.Ident{
		Origin:  req.Origin,
		Name:    req.Name,
		Version: req.Version,
	})
	if err != nil {
		return nil, err
	}

	return wrapRecord(record), nil
}
