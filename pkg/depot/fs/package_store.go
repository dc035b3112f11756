package fs

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-courier/logr"
	"github.com/go-json-experiment/json"
	"github.com/opencontainers/go-digest"

	"github.com/octohelm/depotkit/pkg/depot"
	"github.com/octohelm/depotkit/pkg/depot/artifact"
)

var _ depot.PackageService = &packageStore{}

type packageStore struct {
	workspace *workspace
}

func (s *packageStore) Upload(ctx context.Context, ident depot.Ident, checksum digest.Digest, body io.Reader) (*depot.Record, error) {
	if !ident.FullyQualified() {
		return nil, &depot.ErrIdentNotFullyQualified{Ident: ident}
	}

	// fast path only; the record write below is the arbiter
	if exists, err := s.exists(ctx, ident); err != nil {
		return nil, err
	} else if exists {
		return nil, &depot.ErrPackageExists{Ident: ident}
	}

	archivePath := s.workspace.layout.ArchivePath(ident)

	w, err := s.workspace.Writer(ctx, archivePath)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Cancel(ctx)
		return nil, err
	}

	// the blob commits before any metadata write; a failure past this
	// point leaves an orphan blob for out-of-band reconciliation
	if err := w.Commit(ctx); err != nil {
		return nil, err
	}

	a, err := s.parseCommitted(ctx, archivePath)
	if err != nil {
		return nil, &depot.ErrArchiveInvalid{Reason: err}
	}

	if a.Checksum != checksum {
		fault := &depot.ErrChecksumMismatch{Claimed: checksum, Computed: a.Checksum}
		logr.FromContext(ctx).
			WithValues(slog.String("ident", ident.String())).
			Warn(fault)
		return nil, fault
	}

	if !ident.Satisfies(a.Ident) {
		return nil, &depot.ErrIdentMismatch{Claimed: ident, Embedded: a.Ident}
	}

	record := a.Record()

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	if err := s.workspace.PutContentExcl(ctx, s.workspace.layout.PackageRecordPath(record.Ident), raw); err != nil {
		if os.IsExist(err) {
			return nil, &depot.ErrPackageExists{Ident: record.Ident}
		}
		return nil, err
	}

	logr.FromContext(ctx).
		WithValues(slog.String("ident", record.Ident.String())).
		Info("archive added to depot")

	return record, nil
}

func (s *packageStore) parseCommitted(ctx context.Context, archivePath string) (*artifact.Archive, error) {
	f, err := s.workspace.Reader(ctx, archivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return artifact.Parse(f)
}

func (s *packageStore) exists(ctx context.Context, ident depot.Ident) (bool, error) {
	if exists, err := s.workspace.Exists(ctx, s.workspace.layout.PackageRecordPath(ident)); err != nil || exists {
		return exists, err
	}
	// an orphan blob without a record still blocks re-upload
	return s.workspace.Exists(ctx, s.workspace.layout.ArchivePath(ident))
}

func (s *packageStore) Get(ctx context.Context, ident depot.Ident) (*depot.Record, error) {
	if !ident.FullyQualified() {
		return nil, &depot.ErrIdentNotFullyQualified{Ident: ident}
	}

	raw, err := s.workspace.GetContent(ctx, s.workspace.layout.PackageRecordPath(ident))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &depot.ErrPackageUnknown{Ident: ident}
		}
		return nil, err
	}

	record := &depot.Record{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *packageStore) Latest(ctx context.Context, prefix depot.Ident) (*depot.Record, error) {
	idents, err := s.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	latest, _ := latestOf(idents)
	return s.Get(ctx, latest)
}

func (s *packageStore) List(ctx context.Context, prefix depot.Ident) ([]depot.Ident, error) {
	idents, err := s.workspace.collectIdents(ctx, s.workspace.layout.PackageRecordsPath(), prefix, "record.json")
	if err != nil {
		return nil, err
	}
	if len(idents) == 0 {
		return nil, &depot.ErrPackageUnknown{Ident: prefix}
	}
	return idents, nil
}

func (s *packageStore) Open(ctx context.Context, ident depot.Ident) (io.ReadCloser, *depot.Record, error) {
	record, err := s.Get(ctx, ident)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.workspace.Reader(ctx, s.workspace.layout.ArchivePath(record.Ident))
	if err != nil {
		if os.IsNotExist(err) {
			// record without blob: refuse to serve and surface for
			// operators instead of attempting repair in-band
			fault := &depot.ErrStoreInconsistent{Ident: record.Ident}
			logr.FromContext(ctx).Error(fault)
			return nil, nil, fault
		}
		return nil, nil, err
	}

	return f, record, nil
}
