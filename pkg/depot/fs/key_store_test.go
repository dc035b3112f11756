package fs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	testingx "github.com/octohelm/x/testing"

	"github.com/octohelm/depotkit/pkg/depot"
	"github.com/octohelm/depotkit/pkg/depot/fs/layout"
)

func TestKeyStore(t *testing.T) {
	d, tmp := newDepot(t)
	ctx := context.Background()

	pub := "SIG-PUB-1\ncore-20170101000000\n\nbase64material\n"

	t.Run("put first revision", func(t *testing.T) {
		err := d.Keys().Put(ctx, "core", "20170101000000", bytes.NewBufferString(pub))
		testingx.Expect(t, err, testingx.Be[error](nil))

		t.Run("open returns the key material", func(t *testing.T) {
			f, err := d.Keys().Open(ctx, "core", "20170101000000")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer f.Close()

			data, _ := io.ReadAll(f)
			testingx.Expect(t, string(data), testingx.Be(pub))
		})

		t.Run("same revision conflicts", func(t *testing.T) {
			err := d.Keys().Put(ctx, "core", "20170101000000", bytes.NewBufferString(pub))

			exists := &depot.ErrKeyExists{}
			testingx.Expect(t, errors.As(err, &exists), testingx.Be(true))
		})
	})

	t.Run("latest tracks the highest revision", func(t *testing.T) {
		err := d.Keys().Put(ctx, "core", "20170201000000", bytes.NewBufferString(pub))
		testingx.Expect(t, err, testingx.Be[error](nil))

		revision, err := d.Keys().Latest(ctx, "core")
		testingx.Expect(t, err, testingx.Be[error](nil))
		testingx.Expect(t, revision, testingx.Be("20170201000000"))

		revisions, err := d.Keys().Revisions(ctx, "core")
		testingx.Expect(t, err, testingx.Be[error](nil))
		testingx.Expect(t, revisions, testingx.Equal([]string{"20170101000000", "20170201000000"}))
	})

	t.Run("unknown origin", func(t *testing.T) {
		_, err := d.Keys().Latest(ctx, "acme")

		unknown := &depot.ErrKeyUnknown{}
		testingx.Expect(t, errors.As(err, &unknown), testingx.Be(true))

		_, err = d.Keys().Open(ctx, "acme", "20170101000000")
		testingx.Expect(t, errors.As(err, &unknown), testingx.Be(true))
	})

	t.Run("secret keys", func(t *testing.T) {
		t.Run("require the public key first", func(t *testing.T) {
			err := d.Keys().PutSecret(ctx, "core", "20170301000000", []byte("SIG-SEC-1\n"))

			unknown := &depot.ErrKeyUnknown{}
			testingx.Expect(t, errors.As(err, &unknown), testingx.Be(true))
		})

		t.Run("store against an existing revision", func(t *testing.T) {
			err := d.Keys().PutSecret(ctx, "core", "20170101000000", []byte("SIG-SEC-1\n"))
			testingx.Expect(t, err, testingx.Be[error](nil))

			t.Run("repeat conflicts and keeps the stored material", func(t *testing.T) {
				err := d.Keys().PutSecret(ctx, "core", "20170101000000", []byte("SIG-SEC-1-OTHER\n"))

				exists := &depot.ErrSecretKeyExists{}
				testingx.Expect(t, errors.As(err, &exists), testingx.Be(true))

				data, err := os.ReadFile(filepath.Join(tmp, layout.Default.SecretKeyPath("core", "20170101000000")))
				testingx.Expect(t, err, testingx.Be[error](nil))
				testingx.Expect(t, string(data), testingx.Be("SIG-SEC-1\n"))
			})
		})
	})
}
