package fs

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/go-courier/logr"
	"github.com/go-json-experiment/json"

	"github.com/octohelm/depotkit/pkg/depot"
)

var _ depot.KeyService = &keyStore{}

type keyStore struct {
	workspace *workspace
}

// Put stores a public origin key. Like packages, the key file commits
// before its record; the record's exclusive create arbitrates conflicts.
func (s *keyStore) Put(ctx context.Context, origin string, revision string, body io.Reader) error {
	recordPath := s.workspace.layout.KeyRecordPath(origin, revision)

	if exists, err := s.workspace.Exists(ctx, recordPath); err != nil {
		return err
	} else if exists {
		return &depot.ErrKeyExists{Origin: origin, Revision: revision}
	}

	w, err := s.workspace.Writer(ctx, s.workspace.layout.KeyPath(origin, revision))
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Cancel(ctx)
		return err
	}

	if err := w.Commit(ctx); err != nil {
		return err
	}

	raw, err := json.Marshal(&depot.OriginKey{Origin: origin, Revision: revision})
	if err != nil {
		return err
	}

	if err := s.workspace.PutContentExcl(ctx, recordPath, raw); err != nil {
		if os.IsExist(err) {
			return &depot.ErrKeyExists{Origin: origin, Revision: revision}
		}
		return err
	}

	logr.FromContext(ctx).
		WithValues(slog.String("origin", origin), slog.String("revision", revision)).
		Info("origin key added to depot")

	return nil
}

// PutSecret stores secret key material for an (origin, revision) whose
// public key is already present.
func (s *keyStore) PutSecret(ctx context.Context, origin string, revision string, content []byte) error {
	if exists, err := s.workspace.Exists(ctx, s.workspace.layout.KeyRecordPath(origin, revision)); err != nil {
		return err
	} else if !exists {
		return &depot.ErrKeyUnknown{Origin: origin, Revision: revision}
	}

	recordPath := s.workspace.layout.SecretKeyRecordPath(origin, revision)

	// checked before any blob write: a rejected repeat must not clobber
	// the stored material
	if exists, err := s.workspace.Exists(ctx, recordPath); err != nil {
		return err
	} else if exists {
		return &depot.ErrSecretKeyExists{Origin: origin, Revision: revision}
	}

	w, err := s.workspace.Writer(ctx, s.workspace.layout.SecretKeyPath(origin, revision))
	if err != nil {
		return err
	}

	if _, err := w.Write(content); err != nil {
		_ = w.Cancel(ctx)
		return err
	}

	if err := w.Commit(ctx); err != nil {
		return err
	}

	raw, err := json.Marshal(&depot.OriginKey{Origin: origin, Revision: revision})
	if err != nil {
		return err
	}

	if err := s.workspace.PutContentExcl(ctx, recordPath, raw); err != nil {
		if os.IsExist(err) {
			return &depot.ErrSecretKeyExists{Origin: origin, Revision: revision}
		}
		return err
	}

	return nil
}

func (s *keyStore) Open(ctx context.Context, origin string, revision string) (io.ReadCloser, error) {
	f, err := s.workspace.Reader(ctx, s.workspace.layout.KeyPath(origin, revision))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &depot.ErrKeyUnknown{Origin: origin, Revision: revision}
		}
		return nil, err
	}
	return f, nil
}

// Latest resolves the maximum revision for the origin. Revisions are
// opaque sortable tokens; plain string order decides.
func (s *keyStore) Latest(ctx context.Context, origin string) (string, error) {
	revisions, err := s.Revisions(ctx, origin)
	if err != nil {
		return "", err
	}
	return revisions[len(revisions)-1], nil
}

func (s *keyStore) Revisions(ctx context.Context, origin string) ([]string, error) {
	revisions := make([]string, 0)

	err := s.workspace.WalkDir(ctx, s.workspace.layout.KeyRecordsPath(origin), func(pathname string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if pathname == "." {
			return nil
		}
		if d.IsDir() {
			revisions = append(revisions, d.Name())
			return fs.SkipDir
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if len(revisions) == 0 {
		return nil, &depot.ErrKeyUnknown{Origin: origin}
	}

	sort.Strings(revisions)
	return revisions, nil
}
