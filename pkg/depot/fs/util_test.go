package fs_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/octohelm/unifs/pkg/filesystem/local"
	testingx "github.com/octohelm/x/testing"
	"github.com/opencontainers/go-digest"

	"github.com/octohelm/depotkit/pkg/depot"
	"github.com/octohelm/depotkit/pkg/depot/artifact"
	depotfs "github.com/octohelm/depotkit/pkg/depot/fs"
)

func newDepot(t testing.TB) (depot.Depot, string) {
	tmp := t.TempDir()
	t.Cleanup(func() {
		_ = os.RemoveAll(tmp)
	})

	return depotfs.NewDepot(local.NewFS(tmp)), tmp
}

func buildArchive(t testing.TB, ident string) ([]byte, digest.Digest) {
	id, err := depot.ParseIdent(ident)
	testingx.Expect(t, err, testingx.Be[error](nil))

	buf := bytes.NewBuffer(nil)
	err = artifact.Write(buf, &artifact.Archive{
		Ident:    id,
		Target:   "x86_64-linux",
		Manifest: "# " + id.Name + "\n",
	}, map[string][]byte{
		"bin/" + id.Name: []byte("#!/bin/sh\n"),
	})
	testingx.Expect(t, err, testingx.Be[error](nil))

	return buf.Bytes(), digest.FromBytes(buf.Bytes())
}
