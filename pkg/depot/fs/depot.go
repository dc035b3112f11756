// Package fs implements the depot over a unifs filesystem.
//
// Archives and key material live as blobs published by write-then-rename;
// records are small JSON files created with O_EXCL, which makes record
// creation the write-once arbiter for every entity kind. Both packages and
// keys commit blob first, record second.
package fs

import (
	"github.com/octohelm/unifs/pkg/filesystem"

	"github.com/octohelm/depotkit/pkg/depot"
	"github.com/octohelm/depotkit/pkg/depot/fs/layout"
)

type Option func(*fsDepot)

func WithAuthorizer(a depot.Authorizer) Option {
	return func(d *fsDepot) {
		d.origins.authorizer = a
	}
}

func NewDepot(fs filesystem.FileSystem, options ...Option) depot.Depot {
	w := newWorkspace(fs, layout.Default)

	packages := &packageStore{workspace: w}

	d := &fsDepot{
		packages: packages,
		keys:     &keyStore{workspace: w},
		origins:  &originStore{workspace: w, authorizer: depot.AllowAll{}},
		views:    &viewStore{workspace: w, packages: packages},
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

type fsDepot struct {
	packages *packageStore
	keys     *keyStore
	origins  *originStore
	views    *viewStore
}

func (d *fsDepot) Packages() depot.PackageService {
	return d.packages
}

func (d *fsDepot) Keys() depot.KeyService {
	return d.keys
}

func (d *fsDepot) Origins() depot.OriginService {
	return d.origins
}

func (d *fsDepot) Views() depot.ViewService {
	return d.views
}
