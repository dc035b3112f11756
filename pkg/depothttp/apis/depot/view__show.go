package depot

import (
	"context"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

type ShowViewPackage struct {
	courierhttp.MethodGet `path:"/views/{view}/pkgs/{origin}/{name}/{version}/{release}"`

	View    string `name:"view" in:"path"`
	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Release string `name:"release" in:"path"`
}

func (req *ShowViewPackage) Output(ctx context.Context) (any, error) {
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

	ok, err := d.Views().IsMember(ctx, req.View, ident)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &depot.ErrPackageUnknown{Ident: ident}
	}

	record, err := d.Packages().Get(ctx, ident)
	if err != nil {
		return nil, err
	}

	return wrapRecord(record), nil
}

type ShowLatestViewPackage struct {
	courierhttp.MethodGet `path:"/views/{view}/pkgs/{origin}/{name}/latest"`

	View   string `name:"view" in:"path"`
	Origin string `name:"origin" in:"path"`
	Name   string `name:"name" in:"path"`
}

func (req *ShowLatestViewPackage) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := d.Views().Latest(ctx, req.View, depot.Ident{
		Origin: req.Origin,
		Name:   req.Name,
	})
	if err != nil {
		return nil, err
	}

	return wrapRecord(record), nil
}

type ShowLatestViewPackageRelease struct {
	courierhttp.MethodGet `path:"/views/{view}/pkgs/{origin}/{name}/{version}/latest"`

	View    string `name:"view" in:"path"`
	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
}

func (req *ShowLatestViewPackageRelease) Output(ctx context.Context) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := d.Views().Latest(ctx, req.View, depot.Ident{
		Origin:  req.Origin,
		Name:    req.Name,
		Version: req.Version,
	})
	if err != nil {
		return nil, err
	}

	return wrapRecord(record), nil
}
