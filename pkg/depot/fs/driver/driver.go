package driver

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/octohelm/unifs/pkg/filesystem"
)

// ErrWriteSync reports a writer that accepted zero bytes when more were
// requested. This is a fatal storage fault, never retried.
var ErrWriteSync = errors.New("write sync failed")

type Driver interface {
	WalkDir(ctx context.Context, path string, fn fs.WalkDirFunc) error
	Stat(ctx context.Context, path string) (filesystem.FileInfo, error)
	Exists(ctx context.Context, path string) (bool, error)

	Reader(ctx context.Context, path string) (io.ReadCloser, error)

	// Writer streams into a sibling temp file; Commit publishes it onto
	// path with a single rename. Readers of path never observe a partial
	// file.
	Writer(ctx context.Context, path string) (FileWriter, error)

	Delete(ctx context.Context, path string) error
	Move(ctx context.Context, oldPath string, newPath string) error

	GetContent(ctx context.Context, path string) ([]byte, error)
	PutContent(ctx context.Context, path string, data []byte) error

	// PutContentExcl creates path with the given content, failing with
	// fs.ErrExist when it is already present. This is the write-once
	// arbiter for record creation; existence pre-checks are fast-path only.
	PutContentExcl(ctx context.Context, path string, data []byte) error
}

type FileWriter interface {
	io.WriteCloser
	Size() int64
	Cancel(context.Context) error
	Commit(context.Context) error
}
