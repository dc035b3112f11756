// Package artifact reads and writes depot package archives.
//
// An archive is a gzip-compressed tarball whose payload is opaque to the
// depot except for a small set of metadata files under .depot/ that embed
// the package's identity and manifest. The archive's checksum is the
// canonical digest of the raw (compressed) bytes.
package artifact

import (
	"archive/tar"
	"bufio"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"

	"github.com/octohelm/depotkit/pkg/depot"
)

const (
	MetaDir = ".depot"

	identFile    = MetaDir + "/IDENT"
	targetFile   = MetaDir + "/TARGET"
	manifestFile = MetaDir + "/MANIFEST"
	depsFile     = MetaDir + "/DEPS"
	exposesFile  = MetaDir + "/EXPOSES"
)

type Archive struct {
	Ident    depot.Ident
	Checksum digest.Digest
	Target   string
	Manifest string
	Deps     []depot.Ident
	Exposes  []string
}

func (a *Archive) Record() *depot.Record {
	return &depot.Record{
		Ident:    a.Ident,
		Checksum: a.Checksum,
		Target:   a.Target,
		Manifest: a.Manifest,
		Deps:     a.Deps,
		Exposes:  a.Exposes,
	}
}

// Parse streams the archive once, extracting the embedded metadata while
// digesting the raw bytes.
func Parse(r io.Reader) (*Archive, error) {
	digester := digest.Canonical.Digester()
	tee := io.TeeReader(r, digester.Hash())

	gz, err := gzip.NewReader(tee)
	if err != nil {
		return nil, errors.Wrap(err, "read gzip header")
	}

	a := &Archive{}
	identSeen := false

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read tar")
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		switch path.Clean(hdr.Name) {
		case identFile:
			raw, err := io.ReadAll(tr)
			if err != nil {
				return nil, errors.Wrap(err, "read IDENT")
			}
			ident, err := depot.ParseIdent(strings.TrimSpace(string(raw)))
			if err != nil {
				return nil, err
			}
			if !ident.FullyQualified() {
				return nil, errors.Errorf("embedded ident %s is not fully qualified", ident)
			}
			a.Ident = ident
			identSeen = true
		case targetFile:
			raw, err := io.ReadAll(tr)
			if err != nil {
				return nil, errors.Wrap(err, "read TARGET")
			}
			a.Target = strings.TrimSpace(string(raw))
		case manifestFile:
			raw, err := io.ReadAll(tr)
			if err != nil {
				return nil, errors.Wrap(err, "read MANIFEST")
			}
			a.Manifest = string(raw)
		case depsFile:
			deps, err := parseDeps(tr)
			if err != nil {
				return nil, err
			}
			a.Deps = deps
		case exposesFile:
			raw, err := io.ReadAll(tr)
			if err != nil {
				return nil, errors.Wrap(err, "read EXPOSES")
			}
			a.Exposes = strings.Fields(string(raw))
		}
	}

	if !identSeen {
		return nil, errors.New("archive carries no embedded ident")
	}

	// gzip buffers ahead of the tar stream; drain the rest so the digest
	// covers every raw byte of the archive.
	if _, err := io.Copy(io.Discard, tee); err != nil {
		return nil, errors.Wrap(err, "drain archive")
	}

	a.Checksum = digester.Digest()
	return a, nil
}

func parseDeps(r io.Reader) ([]depot.Ident, error) {
	deps := make([]depot.Ident, 0)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		dep, err := depot.ParseIdent(line)
		if err != nil {
			return nil, errors.Wrap(err, "read DEPS")
		}
		deps = append(deps, dep)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read DEPS")
	}

	return deps, nil
}
