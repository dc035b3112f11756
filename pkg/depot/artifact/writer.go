package artifact

import (
	"archive/tar"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Write renders a into a depot archive, placing the metadata files first
// and the given payload files after them.
func Write(w io.Writer, a *Archive, files map[string][]byte) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	metas := []struct {
		name string
		data string
	}{
		{identFile, a.Ident.String() + "\n"},
		{targetFile, a.Target + "\n"},
		{manifestFile, a.Manifest},
		{depsFile, renderDeps(a)},
		{exposesFile, strings.Join(a.Exposes, " ") + "\n"},
	}

	for _, m := range metas {
		if err := writeEntry(tw, m.name, []byte(m.data)); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeEntry(tw, name, files[name]); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return errors.Wrap(err, "close tar")
	}
	return errors.Wrap(gz.Close(), "close gzip")
}

func renderDeps(a *Archive) string {
	b := &strings.Builder{}
	for _, dep := range a.Deps {
		b.WriteString(dep.String())
		b.WriteString("\n")
	}
	return b.String()
}

func writeEntry(tw *tar.Writer, name string, data []byte) error {
	if err := tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o644,
		Size:     int64(len(data)),
		Typeflag: tar.TypeReg,
	}); err != nil {
		return errors.Wrapf(err, "write %s header", name)
	}
	if _, err := tw.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}
