package depothttp

import (
	"context"
	"net/http"
	"strings"

	infraconfiguration "github.com/innoai-tech/infra/pkg/configuration"
	infrahttp "github.com/innoai-tech/infra/pkg/http"

	"github.com/octohelm/depotkit/pkg/depothttp/apis"
)

type Server struct {
	infrahttp.Server
}

func (s *Server) SetDefaults() {
	if s.Addr == "" {
		s.Addr = ":9632"
	}
}

func (s *Server) Init(ctx context.Context) error {
	s.ApplyRouter(apis.R)

	s.ApplyGlobalHandlers(func(h http.Handler) http.Handler {
		return allowAnyOrigin(normalizeTrailingSlash(h))
	})

	return infraconfiguration.Init(ctx, &s.Server)
}

func (s *Server) InjectContext(ctx context.Context) context.Context {
	return infraconfiguration.InjectContext(ctx)
}

func allowAnyOrigin(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		h.ServeHTTP(w, req)
	})
}

func normalizeTrailingSlash(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" && strings.HasSuffix(req.URL.Path, "/") {
			req.URL.Path = req.URL.Path[0 : len(req.URL.Path)-1]
			req.RequestURI = req.URL.RequestURI()
		}

		h.ServeHTTP(w, req)
	})
}
