package render

import (
	"context"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/routedoc/routedoc/internal/ctxlog"
)

// Server exposes a Registry's documents over HTTP: the resource index at the
// mount path and each declaration at "<mount>/<group>". Responses are JSON.
type Server struct {
	registry *Registry
	mount    string
}

// NewServer creates a server for registry mounted at mount (for example
// "/api-docs"). An empty mount defaults to "/api-docs".
func NewServer(registry *Registry, mount string) *Server {
	if mount == "" {
		mount = "/api-docs"
	}
	return &Server{
		registry: registry,
		mount:    strings.TrimSuffix(mount, "/"),
	}
}

// Handler returns the fasthttp request handler. The provided context
// supplies the logger used for request logging.
func (s *Server) Handler(ctx context.Context) fasthttp.RequestHandler {
	logger := ctxlog.FromContext(ctx)
	return func(rc *fasthttp.RequestCtx) {
		path := string(rc.Path())
		if !rc.IsGet() {
			rc.SetStatusCode(fasthttp.StatusMethodNotAllowed)
			return
		}

		var doc any
		switch {
		case path == s.mount:
			doc = s.registry.Index()
		case strings.HasPrefix(path, s.mount+"/"):
			group := strings.TrimPrefix(path, s.mount+"/")
			decl, ok := s.registry.Declaration(group)
			if !ok {
				rc.SetStatusCode(fasthttp.StatusNotFound)
				return
			}
			doc = decl
		default:
			rc.SetStatusCode(fasthttp.StatusNotFound)
			return
		}

		data, err := MarshalJSON(doc)
		if err != nil {
			logger.Error("failed to marshal document", "path", path, "error", err)
			rc.SetStatusCode(fasthttp.StatusInternalServerError)
			return
		}

		rc.SetContentType("application/json; charset=utf-8")
		rc.SetStatusCode(fasthttp.StatusOK)
		rc.SetBody(data)
		logger.Debug("served document", "path", path, "bytes", len(data))
	}
}

// ListenAndServe serves on addr until the server fails. Intended for the CLI;
// embedders needing lifecycle control should mount Handler on their own
// fasthttp.Server.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ctxlog.FromContext(ctx).Info("serving api docs", "addr", addr, "mount", s.mount)
	return fasthttp.ListenAndServe(addr, s.Handler(ctx))
}
