package depot

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// Ident names a package by its four-part coordinate.
// Version and Release may be empty; an Ident carrying all four parts is
// fully qualified and immutable once a package is stored under it.
type Ident struct {
	Origin  string `json:"origin"`
	Name    string `json:"name"`
	Version string `json:"version,omitzero"`
	Release string `json:"release,omitzero"`
}

func ParseIdent(s string) (Ident, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || len(parts) > 4 {
		return Ident{}, fmt.Errorf("ident %q: want origin/name[/version[/release]]", s)
	}
	for _, p := range parts {
		if p == "" {
			return Ident{}, fmt.Errorf("ident %q: empty segment", s)
		}
	}

	ident := Ident{Origin: parts[0], Name: parts[1]}
	if len(parts) > 2 {
		ident.Version = parts[2]
	}
	if len(parts) > 3 {
		ident.Release = parts[3]
	}
	return ident, nil
}

func (i Ident) String() string {
	return path.Join(i.parts()...)
}

func (i Ident) parts() []string {
	parts := make([]string, 0, 4)
	for _, p := range []string{i.Origin, i.Name, i.Version, i.Release} {
		if p == "" {
			break
		}
		parts = append(parts, p)
	}
	return parts
}

func (i Ident) FullyQualified() bool {
	return i.Origin != "" && i.Name != "" && i.Version != "" && i.Release != ""
}

// Satisfies reports whether i is compatible with the fully qualified ident
// embedded in an archive: every concrete field of i must match.
func (i Ident) Satisfies(embedded Ident) bool {
	if i.Origin != embedded.Origin || i.Name != embedded.Name {
		return false
	}
	if i.Version != "" && i.Version != embedded.Version {
		return false
	}
	if i.Release != "" && i.Release != embedded.Release {
		return false
	}
	return true
}

// Matches reports whether i falls under the partial ident prefix.
func (i Ident) Matches(prefix Ident) bool {
	return prefix.Satisfies(i)
}

// Compare orders idents of the same origin/name by (version, release),
// highest last. Version and release are compared as dot-separated
// numeric/alphanumeric tuples.
func (i Ident) Compare(o Ident) int {
	if c := strings.Compare(i.Origin, o.Origin); c != 0 {
		return c
	}
	if c := strings.Compare(i.Name, o.Name); c != 0 {
		return c
	}
	if c := compareTuple(i.Version, o.Version); c != 0 {
		return c
	}
	return compareTuple(i.Release, o.Release)
}

func compareTuple(a, b string) int {
	if a == b {
		return 0
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for n := range min(len(as), len(bs)) {
		an, aerr := strconv.ParseUint(as[n], 10, 64)
		bn, berr := strconv.ParseUint(bs[n], 10, 64)

		if aerr == nil && berr == nil {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			continue
		}

		if c := strings.Compare(as[n], bs[n]); c != 0 {
			return c
		}
	}

	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// ArchiveFilename is the canonical file name of the archive backing a
// fully qualified ident, used for on-disk layout and download hints.
func (i Ident) ArchiveFilename() string {
	return fmt.Sprintf("%s-%s-%s-%s.pkg.tgz", i.Origin, i.Name, i.Version, i.Release)
}
