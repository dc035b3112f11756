package api

import (
	"context"
	"os"
	"path/filepath"

	"github.com/octohelm/unifs/pkg/filesystem"
	"github.com/octohelm/unifs/pkg/filesystem/api"
	"github.com/octohelm/unifs/pkg/strfmt"

	"github.com/octohelm/depotkit/pkg/depot"
	depotfs "github.com/octohelm/depotkit/pkg/depot/fs"
	"github.com/octohelm/depotkit/pkg/depot/fs/driver"
	"github.com/octohelm/depotkit/pkg/depot/fs/uploadpurger"
)

type DepotProvider struct {
	api.FileSystemBackend

	Purger uploadpurger.UploadPurger `flags:",omitzero"`

	depot depot.Depot
}

func (s *DepotProvider) SetDefaults() {
	s.Purger.SetDefaults()
}

func (s *DepotProvider) Init(ctx context.Context) error {
	if s.Backend.IsZero() {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		endpoint, _ := strfmt.ParseEndpoint("file://" + filepath.Join(cwd, ".tmp/depot"))
		s.Backend = *endpoint
	}

	if err := s.FileSystemBackend.Init(ctx); err != nil {
		return err
	}

	if err := filesystem.MkdirAll(ctx, s.FileSystem(), "."); err != nil {
		return err
	}

	s.depot = depotfs.NewDepot(s.FileSystem())

	return nil
}

func (s *DepotProvider) InjectContext(ctx context.Context) context.Context {
	return depot.ContextWithDepot(ctx, s.depot)
}

func (s *DepotProvider) Depot() depot.Depot {
	return s.depot
}

// Serve keeps the upload purger running until the context is done.
func (s *DepotProvider) Serve(ctx context.Context) error {
	p := uploadpurger.New(driver.FromFileSystem(s.FileSystem()))
	p.ExpiresIn = s.Purger.ExpiresIn
	p.Period = s.Purger.Period
	p.SetDefaults()

	return p.Run(ctx)
}
