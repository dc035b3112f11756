package depot

import (
	"github.com/opencontainers/go-digest"
)

// Record is the indexed metadata of a stored package. A Record exists if
// and only if the archive blob backing its ident exists; the pair is
// created once by upload and never mutated.
type Record struct {
	Ident    Ident         `json:"ident"`
	Checksum digest.Digest `json:"checksum"`
	Target   string        `json:"target,omitzero"`
	Manifest string        `json:"manifest,omitzero"`
	Deps     []Ident       `json:"deps,omitzero"`
	Exposes  []string      `json:"exposes,omitzero"`
}

func (Record) ContentType() string {
	return "application/json"
}

// OriginKey indexes one revision of an origin signing key.
type OriginKey struct {
	Origin   string `json:"origin"`
	Revision string `json:"revision"`
}

func (k OriginKey) Filename() string {
	return k.Origin + "-" + k.Revision + ".pub"
}

// Origin is a namespace owner for packages and keys.
type Origin struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func (o *Origin) HasMember(user string) bool {
	for _, m := range o.Members {
		if m == user {
			return true
		}
	}
	return false
}

// View is a named promotion target; packages become members only through
// explicit promotion.
type View struct {
	Name string `json:"name"`
}

type PackageList struct {
	Prefix Ident   `json:"prefix"`
	Idents []Ident `json:"idents"`
}

func (PackageList) ContentType() string {
	return "application/json"
}

type ViewList struct {
	Views []string `json:"views"`
}

func (ViewList) ContentType() string {
	return "application/json"
}

type RevisionList struct {
	Origin    string   `json:"origin"`
	Revisions []string `json:"revisions"`
}

func (RevisionList) ContentType() string {
	return "application/json"
}
