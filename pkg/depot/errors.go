package depot

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/octohelm/courier/pkg/statuserror"
)

type ErrIdentNotFullyQualified struct {
	statuserror.BadRequest

	Ident Ident
}

func (ErrIdentNotFullyQualified) ErrCode() string {
	return "IDENT_NOT_FULLY_QUALIFIED"
}

func (err *ErrIdentNotFullyQualified) Error() string {
	return fmt.Sprintf("ident %s is not fully qualified", err.Ident)
}

type ErrPackageExists struct {
	statuserror.Conflict

	Ident Ident
}

func (ErrPackageExists) ErrCode() string {
	return "PACKAGE_EXISTS"
}

func (err *ErrPackageExists) Error() string {
	return fmt.Sprintf("package %s already exists", err.Ident)
}

type ErrPackageUnknown struct {
	statuserror.NotFound

	Ident Ident
}

func (ErrPackageUnknown) ErrCode() string {
	return "PACKAGE_UNKNOWN"
}

func (err *ErrPackageUnknown) Error() string {
	return fmt.Sprintf("unknown package %s", err.Ident)
}

type ErrChecksumMismatch struct {
	statuserror.UnprocessableEntity

	Claimed  digest.Digest
	Computed digest.Digest
}

func (ErrChecksumMismatch) ErrCode() string {
	return "CHECKSUM_MISMATCH"
}

func (err *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch: claimed=%s computed=%s", err.Claimed, err.Computed)
}

type ErrIdentMismatch struct {
	statuserror.UnprocessableEntity

	Claimed  Ident
	Embedded Ident
}

func (ErrIdentMismatch) ErrCode() string {
	return "IDENT_MISMATCH"
}

func (err *ErrIdentMismatch) Error() string {
	return fmt.Sprintf("ident mismatch: claimed=%s embedded=%s", err.Claimed, err.Embedded)
}

type ErrArchiveInvalid struct {
	statuserror.UnprocessableEntity

	Reason error
}

func (ErrArchiveInvalid) ErrCode() string {
	return "ARCHIVE_INVALID"
}

func (err *ErrArchiveInvalid) Error() string {
	return fmt.Sprintf("invalid archive: %v", err.Reason)
}

type ErrKeyExists struct {
	statuserror.Conflict

	Origin   string
	Revision string
}

func (ErrKeyExists) ErrCode() string {
	return "KEY_EXISTS"
}

func (err *ErrKeyExists) Error() string {
	return fmt.Sprintf("key %s-%s already exists", err.Origin, err.Revision)
}

type ErrSecretKeyExists struct {
	statuserror.Conflict

	Origin   string
	Revision string
}

func (ErrSecretKeyExists) ErrCode() string {
	return "SECRET_KEY_EXISTS"
}

func (err *ErrSecretKeyExists) Error() string {
	return fmt.Sprintf("secret key %s-%s already exists", err.Origin, err.Revision)
}

type ErrKeyUnknown struct {
	statuserror.NotFound

	Origin   string
	Revision string
}

func (ErrKeyUnknown) ErrCode() string {
	return "KEY_UNKNOWN"
}

func (err *ErrKeyUnknown) Error() string {
	if err.Revision == "" {
		return fmt.Sprintf("no key for origin %s", err.Origin)
	}
	return fmt.Sprintf("unknown key %s-%s", err.Origin, err.Revision)
}

type ErrOriginExists struct {
	statuserror.Conflict

	Name string
}

func (ErrOriginExists) ErrCode() string {
	return "ORIGIN_EXISTS"
}

func (err *ErrOriginExists) Error() string {
	return fmt.Sprintf("origin %s already exists", err.Name)
}

type ErrOriginUnknown struct {
	statuserror.NotFound

	Name string
}

func (ErrOriginUnknown) ErrCode() string {
	return "ORIGIN_UNKNOWN"
}

func (err *ErrOriginUnknown) Error() string {
	return fmt.Sprintf("unknown origin %s", err.Name)
}

type ErrViewExists struct {
	statuserror.Conflict

	Name string
}

func (ErrViewExists) ErrCode() string {
	return "VIEW_EXISTS"
}

func (err *ErrViewExists) Error() string {
	return fmt.Sprintf("view %s already exists", err.Name)
}

type ErrViewUnknown struct {
	statuserror.NotFound

	Name string
}

func (ErrViewUnknown) ErrCode() string {
	return "VIEW_UNKNOWN"
}

func (err *ErrViewUnknown) Error() string {
	return fmt.Sprintf("unknown view %s", err.Name)
}

// ErrStoreInconsistent reports a record whose backing archive blob is
// missing. The pair is committed blob-first, so this can only arise from
// external interference; it is surfaced for operators rather than repaired
// at request time.
type ErrStoreInconsistent struct {
	statuserror.InternalServerError

	Ident Ident
}

func (ErrStoreInconsistent) ErrCode() string {
	return "STORE_INCONSISTENT"
}

func (err *ErrStoreInconsistent) Error() string {
	return fmt.Sprintf("record for %s has no backing archive; run depot repair", err.Ident)
}

type ErrNotAllowed struct {
	statuserror.Forbidden

	Principal Principal
	Action    Action
}

func (ErrNotAllowed) ErrCode() string {
	return "NOT_ALLOWED"
}

func (err *ErrNotAllowed) Error() string {
	return fmt.Sprintf("principal %q is not allowed to %s", err.Principal, err.Action)
}
