package depot_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/innoai-tech/infra/pkg/configuration"
	"github.com/innoai-tech/infra/pkg/configuration/testingutil"
	"github.com/innoai-tech/infra/pkg/otel"
	"github.com/octohelm/courier/pkg/courierhttp/handler/httprouter"
	testingx "github.com/octohelm/x/testing"
	"github.com/opencontainers/go-digest"

	"github.com/octohelm/depotkit/pkg/depot"
	depotapi "github.com/octohelm/depotkit/pkg/depot/api"
	"github.com/octohelm/depotkit/pkg/depot/artifact"
	"github.com/octohelm/depotkit/pkg/depothttp/apis"
)

func TestDepotAPI(t *testing.T) {
	ctx, _ := testingutil.BuildContext(t, func(d *struct {
		otel.Otel
		depotapi.DepotProvider
	},
	) {
		tmp := t.TempDir()
		t.Cleanup(func() {
			_ = os.RemoveAll(tmp)
		})

		d.Backend.Scheme = "file"
		d.Backend.Path = tmp
	})

	injector := configuration.ContextInjectorFromContext(ctx)

	h, err := httprouter.New(apis.R, "depot")
	testingx.Expect(t, err, testingx.Be[error](nil))

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" && strings.HasSuffix(req.URL.Path, "/") {
			req.URL.Path = req.URL.Path[0 : len(req.URL.Path)-1]
		}

		h.ServeHTTP(w, req.WithContext(injector.InjectContext(req.Context())))
	}))
	t.Cleanup(s.Close)

	ident, _ := depot.ParseIdent("core/redis/3.2.4/20170101000000")

	buf := bytes.NewBuffer(nil)
	err = artifact.Write(buf, &artifact.Archive{
		Ident:    ident,
		Target:   "x86_64-linux",
		Manifest: "# redis\n",
	}, map[string][]byte{
		"bin/redis-server": []byte("#!/bin/sh\n"),
	})
	testingx.Expect(t, err, testingx.Be[error](nil))

	raw := buf.Bytes()
	checksum := digest.FromBytes(raw)

	t.Run("upload a package", func(t *testing.T) {
		resp, err := http.Post(
			s.URL+"/v1/pkgs/core/redis/3.2.4/20170101000000?checksum="+checksum.String(),
			"application/octet-stream",
			bytes.NewReader(raw),
		)
		testingx.Expect(t, err, testingx.Be[error](nil))
		defer resp.Body.Close()

		testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusCreated))
		testingx.Expect(t, resp.Header.Get("Location"), testingx.Be("/v1/pkgs/core/redis/3.2.4/20170101000000/download"))

		t.Run("re-upload conflicts", func(t *testing.T) {
			resp, err := http.Post(
				s.URL+"/v1/pkgs/core/redis/3.2.4/20170101000000?checksum="+checksum.String(),
				"application/octet-stream",
				bytes.NewReader(raw),
			)
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusConflict))
		})

		t.Run("show latest", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/pkgs/core/redis/latest")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusOK))
			testingx.Expect(t, resp.Header.Get("ETag"), testingx.Be(checksum.String()))

			data, _ := io.ReadAll(resp.Body)
			record := &depot.Record{}
			err = json.Unmarshal(data, record)
			testingx.Expect(t, err, testingx.Be[error](nil))
			testingx.Expect(t, record.Ident, testingx.Equal(ident))
		})

		t.Run("download", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/pkgs/core/redis/3.2.4/20170101000000/download")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusOK))
			testingx.Expect(t, resp.Header.Get("X-Filename"), testingx.Be("core-redis-3.2.4-20170101000000.pkg.tgz"))

			data, _ := io.ReadAll(resp.Body)
			testingx.Expect(t, bytes.Equal(data, raw), testingx.Be(true))
		})

		t.Run("list with a glob filter", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/pkgs/core?q=core/redis/*/*")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusOK))

			data, _ := io.ReadAll(resp.Body)
			list := &depot.PackageList{}
			err = json.Unmarshal(data, list)
			testingx.Expect(t, err, testingx.Be[error](nil))
			testingx.Expect(t, list.Idents, testingx.Equal([]depot.Ident{ident}))
		})

		t.Run("unknown package is 404", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/pkgs/core/missing/latest")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusNotFound))
		})
	})

	t.Run("views", func(t *testing.T) {
		resp, err := http.Post(s.URL+"/v1/views/stable", "", nil)
		testingx.Expect(t, err, testingx.Be[error](nil))
		defer resp.Body.Close()

		testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusCreated))

		t.Run("promote", func(t *testing.T) {
			resp, err := http.Post(s.URL+"/v1/views/stable/pkgs/core/redis/3.2.4/20170101000000/promote", "", nil)
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusNoContent))
		})

		t.Run("view-scoped latest", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/views/stable/pkgs/core/redis/latest")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusOK))
		})

		t.Run("list views", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/views")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			data, _ := io.ReadAll(resp.Body)
			list := &depot.ViewList{}
			err = json.Unmarshal(data, list)
			testingx.Expect(t, err, testingx.Be[error](nil))
			testingx.Expect(t, list.Views, testingx.Equal([]string{"stable"}))
		})
	})

	t.Run("origin keys", func(t *testing.T) {
		pub := "SIG-PUB-1\ncore-20170101000000\n\nbase64material\n"

		resp, err := http.Post(s.URL+"/v1/origins/core/keys/20170101000000", "application/octet-stream", bytes.NewBufferString(pub))
		testingx.Expect(t, err, testingx.Be[error](nil))
		defer resp.Body.Close()

		testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusCreated))

		t.Run("download latest", func(t *testing.T) {
			resp, err := http.Get(s.URL + "/v1/origins/core/keys/latest")
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusOK))
			testingx.Expect(t, resp.Header.Get("X-Filename"), testingx.Be("core-20170101000000.pub"))

			data, _ := io.ReadAll(resp.Body)
			testingx.Expect(t, string(data), testingx.Be(pub))
		})
	})

	t.Run("origins", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, s.URL+"/v1/origins/acme", nil)
		req.Header.Set("X-Depot-Principal", "alice")

		resp, err := http.DefaultClient.Do(req)
		testingx.Expect(t, err, testingx.Be[error](nil))
		defer resp.Body.Close()

		testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusCreated))

		t.Run("add member", func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPut, s.URL+"/v1/origins/acme/users/bob", nil)
			req.Header.Set("X-Depot-Principal", "alice")

			resp, err := http.DefaultClient.Do(req)
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusNoContent))
		})

		t.Run("delete", func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodDelete, s.URL+"/v1/origins/acme", nil)
			req.Header.Set("X-Depot-Principal", "alice")

			resp, err := http.DefaultClient.Do(req)
			testingx.Expect(t, err, testingx.Be[error](nil))
			defer resp.Body.Close()

			testingx.Expect(t, resp.StatusCode, testingx.Be(http.StatusNoContent))
		})
	})
}
