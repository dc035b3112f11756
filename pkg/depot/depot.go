package depot

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
)

type Depot interface {
	Packages() PackageService
	Keys() KeyService
	Origins() OriginService
	Views() ViewService
}

type PackageService interface {
	// Upload accepts an archive stream claimed to be the package named by
	// ident, with the given content checksum. The blob is committed before
	// the record; a rejected upload never rolls the blob back.
	Upload(ctx context.Context, ident Ident, checksum digest.Digest, body io.Reader) (*Record, error)

	// Get fetches the record of a fully qualified ident.
	Get(ctx context.Context, ident Ident) (*Record, error)

	// Latest resolves a partial ident to the highest fully qualified one
	// beneath it.
	Latest(ctx context.Context, prefix Ident) (*Record, error)

	// List yields every fully qualified ident beneath the prefix.
	List(ctx context.Context, prefix Ident) ([]Ident, error)

	// Open returns the archive stream of a stored package along with its
	// record.
	Open(ctx context.Context, ident Ident) (io.ReadCloser, *Record, error)
}

type KeyService interface {
	Put(ctx context.Context, origin string, revision string, body io.Reader) error
	PutSecret(ctx context.Context, origin string, revision string, content []byte) error

	Open(ctx context.Context, origin string, revision string) (io.ReadCloser, error)
	Latest(ctx context.Context, origin string) (string, error)
	Revisions(ctx context.Context, origin string) ([]string, error)
}

type OriginService interface {
	Create(ctx context.Context, name string, owner Principal) error
	Delete(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*Origin, error)

	AddMember(ctx context.Context, origin string, user string) error
	RemoveMember(ctx context.Context, origin string, user string) error
}

type ViewService interface {
	All(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error

	Promote(ctx context.Context, view string, ident Ident) error
	IsMember(ctx context.Context, view string, ident Ident) (bool, error)

	Latest(ctx context.Context, view string, prefix Ident) (*Record, error)
	List(ctx context.Context, view string, prefix Ident) ([]Ident, error)
}
