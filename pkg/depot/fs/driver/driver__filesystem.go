package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/octohelm/unifs/pkg/filesystem"
)

func FromFileSystem(fs filesystem.FileSystem) Driver {
	return &driver{fs: fs}
}

type driver struct {
	fs filesystem.FileSystem
}

func (d *driver) Stat(ctx context.Context, path string) (filesystem.FileInfo, error) {
	return d.fs.Stat(ctx, path)
}

func (d *driver) Exists(ctx context.Context, path string) (bool, error) {
	if _, err := d.fs.Stat(ctx, path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *driver) Delete(ctx context.Context, path string) error {
	return d.fs.RemoveAll(ctx, path)
}

func (d *driver) Reader(ctx context.Context, path string) (io.ReadCloser, error) {
	return filesystem.Open(ctx, d.fs, path)
}

func (d *driver) WalkDir(ctx context.Context, path string, fn fs.WalkDirFunc) error {
	return filesystem.WalkDir(ctx, filesystem.Sub(d.fs, path), ".", fn)
}

func (d *driver) Move(ctx context.Context, oldPath string, newPath string) error {
	if err := filesystem.MkdirAll(ctx, d.fs, path.Dir(newPath)); err != nil {
		return err
	}
	return d.fs.Rename(ctx, oldPath, newPath)
}

func (d *driver) GetContent(ctx context.Context, path string) ([]byte, error) {
	f, err := d.Reader(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(f)
}

func (d *driver) PutContent(ctx context.Context, path string, data []byte) error {
	if err := d.mkdirAllFor(ctx, path); err != nil {
		return err
	}
	return filesystem.Write(ctx, d.fs, path, data)
}

func (d *driver) PutContentExcl(ctx context.Context, pathname string, data []byte) error {
	if err := d.mkdirAllFor(ctx, pathname); err != nil {
		return err
	}

	file, err := d.fs.OpenFile(ctx, pathname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func (d *driver) Writer(ctx context.Context, pathname string) (FileWriter, error) {
	if err := d.mkdirAllFor(ctx, pathname); err != nil {
		return nil, err
	}

	// Concurrent writers of the same path share the temp name: the race is
	// benign, last rename wins, and record creation arbitrates.
	tmp := pathname + ".tmp"

	file, err := d.fs.OpenFile(ctx, tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, err
	}

	return &fileWriter{driver: d, path: pathname, tmp: tmp, file: file, bw: bufio.NewWriter(file)}, nil
}

func (d *driver) mkdirAllFor(ctx context.Context, pathname string) error {
	if dir := path.Dir(pathname); dir != "" {
		return filesystem.MkdirAll(ctx, d.fs, dir)
	}
	return nil
}

type fileWriter struct {
	driver *driver
	path   string
	tmp    string

	written int64

	file filesystem.File
	bw   *bufio.Writer

	closed    bool
	committed bool
	cancelled bool
}

func (fw *fileWriter) Write(p []byte) (int, error) {
	if fw.closed {
		return 0, fmt.Errorf("already closed")
	} else if fw.committed {
		return 0, fmt.Errorf("already committed")
	} else if fw.cancelled {
		return 0, fmt.Errorf("already cancelled")
	}

	n, err := fw.bw.Write(p)
	if n == 0 && len(p) > 0 && err == nil {
		return 0, ErrWriteSync
	}

	fw.written += int64(n)

	return n, err
}

func (fw *fileWriter) Size() int64 {
	return fw.written
}

// Close releases the file handle. An uncommitted temp file stays on disk,
// invisible at the final path, for the upload purger to reclaim.
func (fw *fileWriter) Close() error {
	if fw.closed {
		return fmt.Errorf("already closed")
	}

	if err := fw.bw.Flush(); err != nil {
		return err
	}

	if err := fw.file.Close(); err != nil {
		return err
	}

	fw.closed = true

	return nil
}

func (fw *fileWriter) Cancel(ctx context.Context) error {
	if fw.closed {
		return fmt.Errorf("already closed")
	}

	fw.cancelled = true

	_ = fw.file.Close()

	return fw.driver.Delete(ctx, fw.tmp)
}

// Commit flushes the temp file and renames it onto the final path. The
// rename is the publication point.
func (fw *fileWriter) Commit(ctx context.Context) error {
	if fw.closed {
		return fmt.Errorf("already closed")
	} else if fw.committed {
		return fmt.Errorf("already committed")
	} else if fw.cancelled {
		return fmt.Errorf("already cancelled")
	}

	if err := fw.bw.Flush(); err != nil {
		return err
	}

	if err := fw.file.Close(); err != nil {
		return err
	}

	if err := fw.driver.fs.Rename(ctx, fw.tmp, fw.path); err != nil {
		return err
	}

	fw.committed = true
	fw.closed = true

	return nil
}
