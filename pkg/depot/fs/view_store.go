package fs

import (
	"context"
	"io/fs"
	"os"

	"github.com/go-json-experiment/json"

	"github.com/octohelm/depotkit/pkg/depot"
)

var _ depot.ViewService = &viewStore{}

type viewStore struct {
	workspace *workspace
	packages  *packageStore
}

func (s *viewStore) All(ctx context.Context) ([]string, error) {
	views := make([]string, 0)

	err := s.workspace.WalkDir(ctx, s.workspace.layout.ViewsPath(), func(pathname string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if pathname == "." {
			return nil
		}
		if d.IsDir() {
			views = append(views, d.Name())
			return fs.SkipDir
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return views, nil
}

func (s *viewStore) Create(ctx context.Context, name string) error {
	raw, err := json.Marshal(&depot.View{Name: name})
	if err != nil {
		return err
	}

	if err := s.workspace.PutContentExcl(ctx, s.workspace.layout.ViewRecordPath(name), raw); err != nil {
		if os.IsExist(err) {
			return &depot.ErrViewExists{Name: name}
		}
		return err
	}

	return nil
}

func (s *viewStore) exists(ctx context.Context, name string) error {
	if exists, err := s.workspace.Exists(ctx, s.workspace.layout.ViewRecordPath(name)); err != nil {
		return err
	} else if !exists {
		return &depot.ErrViewUnknown{Name: name}
	}
	return nil
}

// Promote adds a stored package to the view. Membership is a set:
// promoting twice is a no-op. There is no demotion.
func (s *viewStore) Promote(ctx context.Context, view string, ident depot.Ident) error {
	if err := s.exists(ctx, view); err != nil {
		return err
	}

	record, err := s.packages.Get(ctx, ident)
	if err != nil {
		return err
	}

	return s.workspace.PutContent(ctx, s.workspace.layout.ViewMemberPath(view, record.Ident), []byte(record.Ident.String()))
}

func (s *viewStore) IsMember(ctx context.Context, view string, ident depot.Ident) (bool, error) {
	if err := s.exists(ctx, view); err != nil {
		return false, err
	}
	return s.workspace.Exists(ctx, s.workspace.layout.ViewMemberPath(view, ident))
}

func (s *viewStore) Latest(ctx context.Context, view string, prefix depot.Ident) (*depot.Record, error) {
	idents, err := s.List(ctx, view, prefix)
	if err != nil {
		return nil, err
	}

	latest, _ := latestOf(idents)
	return s.packages.Get(ctx, latest)
}

func (s *viewStore) List(ctx context.Context, view string, prefix depot.Ident) ([]depot.Ident, error) {
	if err := s.exists(ctx, view); err != nil {
		return nil, err
	}

	idents, err := s.workspace.collectIdents(ctx, s.workspace.layout.ViewMembersPath(view), prefix, "link")
	if err != nil {
		return nil, err
	}
	if len(idents) == 0 {
		return nil, &depot.ErrPackageUnknown{Ident: prefix}
	}
	return idents, nil
}
