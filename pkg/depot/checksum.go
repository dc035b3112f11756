package depot

import (
	"github.com/opencontainers/go-digest"
)

// Checksum is a content digest as claimed by a client. A bare sha256 hex
// string is accepted alongside the canonical algorithm-prefixed form.
type Checksum digest.Digest

func (c *Checksum) UnmarshalText(t []byte) error {
	s := string(t)

	dgst, err := digest.Parse(s)
	if err != nil {
		if len(s) == digest.Canonical.Size()*2 {
			dgst, err = digest.Parse(digest.Canonical.String() + ":" + s)
		}
		if err != nil {
			return err
		}
	}

	*c = Checksum(dgst)
	return nil
}

func (c Checksum) Digest() digest.Digest {
	return digest.Digest(c)
}
