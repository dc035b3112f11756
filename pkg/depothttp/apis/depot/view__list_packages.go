package depot

import (
	"context"

	"github.com/octohelm/courier/pkg/courierhttp"

	"github.com/octohelm/depotkit/pkg/depot"
)

func listViewPackages(ctx context.Context, view string, prefix depot.Ident, filter string) (any, error) {
	d, err := depotFromContext(ctx)
	if err != nil {
		return nil, err
	}

	idents, err := d.Views().List(ctx, view, prefix)
	if err != nil {
		return nil, err
	}

	idents, err = filterIdents(idents, filter)
	if err != nil {
		return nil, err
	}

	return &depot.PackageList{Prefix: prefix, Idents: idents}, nil
}

type ListViewOriginPackages struct {
	courierhttp.MethodGet `path:"/views/{view}/pkgs/{origin}"`

	View   string `name:"view" in:"path"`
	Origin string `name:"origin" in:"path"`
	Filter string `name:"q,omitempty" in:"query"`
}

func (req *ListViewOriginPackages) Output(ctx context.Context) (any, error) {
	return listViewPackages(ctx, req.View, depot.Ident{Origin: req.Origin}, req.Filter)
}

type ListViewPackages struct {
	courierhttp.MethodGet `path:"/views/{view}/pkgs/{origin}/{name}"`

	View   string `name:"view" in:"path"`
	Origin string `name:"origin" in:"path"`
	Name   string `name:"name" in:"path"`
	Filter string `name:"q,omitempty" in:"query"`
}

func (req *ListViewPackages) Output(ctx context.Context) (any, error) {
	return listViewPackages(ctx, req.View, depot.Ident{Origin: req.Origin, Name: req.Name}, req.Filter)
}

type ListViewPackageReleases struct {
	courierhttp.MethodGet `path:"/views/{view}/pkgs/{origin}/{name}/{version}"`

	View    string `name:"view" in:"path"`
	Origin  string `name:"origin" in:"path"`
	Name    string `name:"name" in:"path"`
	Version string `name:"version" in:"path"`
	Filter  string `name:"q,omitempty" in:"query"`
}

func (req *ListViewPackageReleases) Output(ctx context.Context) (any, error) {
	return listViewPackages(ctx, req.View, depot.Ident{Origin: req.Origin, Name: req.Name, Version: req.Version}, req.Filter)
}
