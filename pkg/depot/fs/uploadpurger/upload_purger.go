// Package uploadpurger reclaims temp files left behind by cancelled or
// crashed uploads. They are never visible at a final path, but they hold
// disk space until something deletes them.
package uploadpurger

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"strings"
	"time"

	"github.com/innoai-tech/infra/pkg/cron"
	"github.com/octohelm/exp/xiter"
	"github.com/octohelm/x/logr"
	"k8s.io/kube-openapi/pkg/validation/strfmt"

	"github.com/octohelm/depotkit/pkg/depot/fs/driver"
)

type UploadPurger struct {
	ExpiresIn strfmt.Duration `flags:",omitzero"`
	Period    cron.Spec       `flags:",omitzero"`

	driver driver.Driver
}

func New(d driver.Driver) *UploadPurger {
	p := &UploadPurger{driver: d}
	p.SetDefaults()
	return p
}

func (p *UploadPurger) SetDefaults() {
	if p.ExpiresIn == 0 {
		p.ExpiresIn = strfmt.Duration(2 * time.Hour)
	}

	if p.Period.IsZero() {
		p.Period = "@every 10m"
	}
}

func (p *UploadPurger) Run(ctx context.Context) error {
	for range xiter.Merge(
		xiter.Of(time.Now()),
		p.Period.Times(ctx),
	) {
		c, l := logr.FromContext(ctx).Start(ctx, "purging")
		if err := p.Purge(c); err != nil {
			l.Error(err)
		}
		l.End()
	}

	return nil
}

func (p *UploadPurger) Purge(ctx context.Context) error {
	expiredAt := time.Now().Add(-time.Duration(p.ExpiresIn))

	for tmp, err := range p.tempFiles(ctx) {
		if err != nil {
			return err
		}
		if tmp.modTime.Before(expiredAt) {
			if err := p.driver.Delete(ctx, tmp.path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *UploadPurger) tempFiles(ctx context.Context) iter.Seq2[*tempFile, error] {
	return func(yield func(*tempFile, error) bool) {
		yieldTempFile := func(tmp *tempFile) bool {
			return yield(tmp, nil)
		}

		err := p.driver.WalkDir(ctx, ".", func(pathname string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if pathname == "." || d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(pathname, ".tmp") {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return err
			}

			if !yieldTempFile(&tempFile{path: pathname, modTime: info.ModTime()}) {
				return fs.SkipAll
			}

			return nil
		})
		if err != nil {
			if errors.Is(err, fs.SkipAll) {
				return
			}

			if !yield(nil, err) {
				return
			}
		}
	}
}

type tempFile struct {
	path    string
	modTime time.Time
}
