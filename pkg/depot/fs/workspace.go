package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/octohelm/unifs/pkg/filesystem"

	"github.com/octohelm/depotkit/pkg/depot"
	"github.com/octohelm/depotkit/pkg/depot/fs/driver"
	"github.com/octohelm/depotkit/pkg/depot/fs/layout"
)

func newWorkspace(fs filesystem.FileSystem, layout layout.Layout) *workspace {
	return &workspace{
		Driver: driver.FromFileSystem(fs),
		layout: layout,
	}
}

type workspace struct {
	driver.Driver

	layout layout.Layout
}

// collectIdents walks a record tree rooted at root whose directory
// structure is origin/name/version/release, yielding every fully
// qualified ident beneath the prefix. The leaf file name marks a record.
func (ws *workspace) collectIdents(ctx context.Context, root string, prefix depot.Ident, leaf string) ([]depot.Ident, error) {
	idents := make([]depot.Ident, 0)

	err := ws.WalkDir(ctx, root, func(pathname string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if pathname == "." || d.IsDir() {
			return nil
		}
		if path.Base(pathname) != leaf {
			return nil
		}

		segments := strings.Split(path.Dir(pathname), "/")
		if len(segments) != 4 {
			return nil
		}

		ident := depot.Ident{
			Origin:  segments[0],
			Name:    segments[1],
			Version: segments[2],
			Release: segments[3],
		}
		if ident.Matches(prefix) {
			idents = append(idents, ident)
		}

		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return idents, nil
		}
		return nil, err
	}

	return idents, nil
}

func latestOf(idents []depot.Ident) (depot.Ident, bool) {
	if len(idents) == 0 {
		return depot.Ident{}, false
	}

	latest := idents[0]
	for _, ident := range idents[1:] {
		if ident.Compare(latest) > 0 {
			latest = ident
		}
	}
	return latest, true
}
