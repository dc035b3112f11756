package uploadpurger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/octohelm/unifs/pkg/filesystem/local"
	testingx "github.com/octohelm/x/testing"

	"github.com/octohelm/depotkit/pkg/depot/fs/driver"
	"github.com/octohelm/depotkit/pkg/depot/fs/uploadpurger"
)

func TestUploadPurger(t *testing.T) {
	tmp := t.TempDir()
	t.Cleanup(func() {
		_ = os.RemoveAll(tmp)
	})

	ctx := context.Background()

	stale := filepath.Join(tmp, "archives", "core", "stale.pkg.tgz.tmp")
	fresh := filepath.Join(tmp, "archives", "core", "fresh.pkg.tgz.tmp")
	committed := filepath.Join(tmp, "archives", "core", "done.pkg.tgz")

	for _, name := range []string{stale, fresh, committed} {
		err := os.MkdirAll(filepath.Dir(name), 0o755)
		testingx.Expect(t, err, testingx.Be[error](nil))
		err = os.WriteFile(name, []byte("x"), 0o644)
		testingx.Expect(t, err, testingx.Be[error](nil))
	}

	expired := time.Now().Add(-3 * time.Hour)
	err := os.Chtimes(stale, expired, expired)
	testingx.Expect(t, err, testingx.Be[error](nil))

	p := uploadpurger.New(driver.FromFileSystem(local.NewFS(tmp)))

	err = p.Purge(ctx)
	testingx.Expect(t, err, testingx.Be[error](nil))

	_, err = os.Stat(stale)
	testingx.Expect(t, os.IsNotExist(err), testingx.Be(true))

	_, err = os.Stat(fresh)
	testingx.Expect(t, err, testingx.Be[error](nil))

	_, err = os.Stat(committed)
	testingx.Expect(t, err, testingx.Be[error](nil))
}
