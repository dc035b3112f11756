package artifact_test

import (
	"bytes"
	"testing"

	testingx "github.com/octohelm/x/testing"
	"github.com/opencontainers/go-digest"

	"github.com/octohelm/depotkit/pkg/depot"
	"github.com/octohelm/depotkit/pkg/depot/artifact"
)

func TestArchive(t *testing.T) {
	ident, _ := depot.ParseIdent("core/redis/3.2.4/20170101000000")
	dep, _ := depot.ParseIdent("core/glibc/2.22/20170101000000")

	a := &artifact.Archive{
		Ident:    ident,
		Target:   "x86_64-linux",
		Manifest: "# redis\n\nsome manifest\n",
		Deps:     []depot.Ident{dep},
		Exposes:  []string{"6379"},
	}

	buf := bytes.NewBuffer(nil)
	err := artifact.Write(buf, a, map[string][]byte{
		"bin/redis-server": []byte("#!/bin/sh\n"),
	})
	testingx.Expect(t, err, testingx.Be[error](nil))

	raw := buf.Bytes()

	t.Run("parse recovers the embedded metadata", func(t *testing.T) {
		parsed, err := artifact.Parse(bytes.NewReader(raw))
		testingx.Expect(t, err, testingx.Be[error](nil))

		testingx.Expect(t, parsed.Ident, testingx.Equal(ident))
		testingx.Expect(t, parsed.Target, testingx.Be("x86_64-linux"))
		testingx.Expect(t, parsed.Manifest, testingx.Be(a.Manifest))
		testingx.Expect(t, parsed.Deps, testingx.Equal([]depot.Ident{dep}))
		testingx.Expect(t, parsed.Exposes, testingx.Equal([]string{"6379"}))
	})

	t.Run("checksum covers every raw byte", func(t *testing.T) {
		parsed, err := artifact.Parse(bytes.NewReader(raw))
		testingx.Expect(t, err, testingx.Be[error](nil))
		testingx.Expect(t, parsed.Checksum, testingx.Be(digest.FromBytes(raw)))
	})

	t.Run("record mirrors the archive", func(t *testing.T) {
		parsed, err := artifact.Parse(bytes.NewReader(raw))
		testingx.Expect(t, err, testingx.Be[error](nil))

		record := parsed.Record()
		testingx.Expect(t, record.Ident, testingx.Equal(ident))
		testingx.Expect(t, record.Checksum, testingx.Be(parsed.Checksum))
	})
}

func TestArchiveInvalid(t *testing.T) {
	t.Run("not gzip", func(t *testing.T) {
		_, err := artifact.Parse(bytes.NewReader([]byte("plain text")))
		testingx.Expect(t, err != nil, testingx.Be(true))
	})

	t.Run("missing ident", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)

		// a valid tarball without .depot/ metadata is not a package
		err := writeBareTarball(buf, map[string][]byte{
			"bin/redis-server": []byte("#!/bin/sh\n"),
		})
		testingx.Expect(t, err, testingx.Be[error](nil))

		_, err = artifact.Parse(buf)
		testingx.Expect(t, err != nil, testingx.Be(true))
	})

	t.Run("partial ident", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)

		err := writeBareTarball(buf, map[string][]byte{
			".depot/IDENT": []byte("core/redis\n"),
		})
		testingx.Expect(t, err, testingx.Be[error](nil))

		_, err = artifact.Parse(buf)
		testingx.Expect(t, err != nil, testingx.Be(true))
	})
}
