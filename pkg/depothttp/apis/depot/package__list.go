package depot

import (
	"context"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

func listPackages(ctx context.Context, prefix depot.Ident, filter string) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	idents, err := d.Packages().List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	idents, err = filterIdents(idents, filter)
	if err != nil {
		return nil, err
	}

	return &depot.PackageList{Prefix: prefix, Idents: idents}, nil
}

type ListOriginPackages struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}"`

	Origin string `name:"origin" in:"path"`
	Filter string `name:"q,omitempty" in:"query"`
}

func (req *ListOriginPackages) Output(ctx context.Context) (any, error) {
	return listPackages(ctx, depot.Ident{Origin: req.Origin}, req.Filter)
}

type ListPackages struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}/{name}"`

	Origin string `name:"origin" in:"path"`
	Name   string `name:"name" in:"path"`
	Filter string `name:"q,omitempty" in:"query"`
}

func (req *ListPackages) Output(ctx context.Context) (any, error) {
	return listPackages(ctx, depot.Ident{Origin: req.Origin, Name: req.Name}, req.Filter)
}

type ListPackageReleases struct {
	courierhttp.MethodGet `path:"/pkgs/{origin}/{name}/{version}"`

	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Filter  string `name:"q,omitempty" in:"query"`
}

func (req *ListPackageReleases) Output(ctx context.Context) (any, error) {
	return listPackages(ctx, depot.Ident{Origin: req.Origin, Name: req.Name, Version: req.Version}, req.Filter)
}
