package layout

import (
	"path"

	"github.com/octohelm/depotkit/pkg/depot"
)

const Default = Layout("depot/v1")

type Layout string

// archives/{origin}/{name}/{version}/{release}/{origin}-{name}-{version}-{release}.pkg.tgz
func (l Layout) ArchivePath(ident depot.Ident) string {
	return path.Join(string(l), "archives", ident.Origin, ident.Name, ident.Version, ident.Release, ident.ArchiveFilename())
}

// records/pkgs
func (l Layout) PackageRecordsPath() string {
	return path.Join(string(l), "records", "pkgs")
}

// records/pkgs/{origin}/{name}/{version}/{release}/record.json
func (l Layout) PackageRecordPath(ident depot.Ident) string {
	return path.Join(l.PackageRecordsPath(), ident.Origin, ident.Name, ident.Version, ident.Release, "record.json")
}

// keys/{origin}/{origin}-{revision}.pub
func (l Layout) KeyPath(origin string, revision string) string {
	return path.Join(string(l), "keys", origin, origin+"-"+revision+".pub")
}

// keys/{origin}/{origin}-{revision}.key
func (l Layout) SecretKeyPath(origin string, revision string) string {
	return path.Join(string(l), "keys", origin, origin+"-"+revision+".key")
}

// records/keys/{origin}
func (l Layout) KeyRecordsPath(origin string) string {
	return path.Join(string(l), "records", "keys", origin)
}

// records/keys/{origin}/{revision}/record.json
func (l Layout) KeyRecordPath(origin string, revision string) string {
	return path.Join(l.KeyRecordsPath(origin), revision, "record.json")
}

// records/secret_keys/{origin}/{revision}/record.json
func (l Layout) SecretKeyRecordPath(origin string, revision string) string {
	return path.Join(string(l), "records", "secret_keys", origin, revision, "record.json")
}

// records/origins/{name}/record.json
func (l Layout) OriginRecordPath(name string) string {
	return path.Join(string(l), "records", "origins", name, "record.json")
}

// records/views
func (l Layout) ViewsPath() string {
	return path.Join(string(l), "records", "views")
}

// records/views/{name}/record.json
func (l Layout) ViewRecordPath(name string) string {
	return path.Join(l.ViewsPath(), name, "record.json")
}

// records/views/{name}/pkgs
func (l Layout) ViewMembersPath(name string) string {
	return path.Join(l.ViewsPath(), name, "pkgs")
}

// records/views/{name}/pkgs/{origin}/{name}/{version}/{release}/link
func (l Layout) ViewMemberPath(name string, ident depot.Ident) string {
	return path.Join(l.ViewMembersPath(name), ident.Origin, ident.Name, ident.Version, ident.Release, "link")
}
