package router

import (
	"log/slog"
	"net/http"

	"github.com/getmockd/stagehttpd/pkg/logging"
	"github.com/getmockd/stagehttpd/pkg/remap"
)

// Stopper is asked to stop the server once the shutdown command is answered.
type Stopper interface {
	RequestStop()
}

// Router is the http.Handler that serves every request.
type Router struct {
	table   *remap.Table
	static  http.Handler
	stopper Stopper
	hide    []string
	log     *slog.Logger
}

// Option is a functional option for configuring a Router.
type Option func(*Router)

// WithLogger sets the operational logger for the router.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Router) {
		if log != nil {
			rt.log = log
		}
	}
}

// WithHidePatterns sets doublestar patterns, relative to the URL root, for
// paths that always answer 404.
func WithHidePatterns(patterns []string) Option {
	return func(rt *Router) {
		rt.hide = append(rt.hide[:0:0], patterns...)
	}
}

// WithStaticHandler replaces the document root file server. Hide patterns
// still answer 404 before the handler is reached, but directory listings
// produced by h are not filtered.
func WithStaticHandler(h http.Handler) Option {
	return func(rt *Router) {
		if h != nil {
			rt.static = h
		}
	}
}

// New creates a Router serving remapped files from table and everything else
// from docRoot. stopper may be nil, in which case the shutdown command is
// answered but nothing is stopped.
func New(table *remap.Table, docRoot string, stopper Stopper, opts ...Option) *Router {
	rt := &Router{
		table:   table,
		stopper: stopper,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.static == nil {
		rt.static = http.FileServer(hiddenFS{fs: http.Dir(docRoot), patterns: rt.hide})
	}
	return rt
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rt.serveGet(w, r)
	case http.MethodHead:
		if cleaned, _ := SplitPath(r.URL.Path); rt.hidden(cleaned) {
			writeNotFound(w, r.URL.Path)
			return
		}
		rt.static.ServeHTTP(w, r)
	default:
		writeNotImplemented(w, r.Method)
	}
}

func (rt *Router) serveGet(w http.ResponseWriter, r *http.Request) {
	req := ParseRequest(r.Method, r.URL.Path, r.URL.RawQuery)

	if req.Query.ShutdownRequested() {
		writeEmptyOK(w)
		rt.log.Info("shutdown requested", "remote", r.RemoteAddr)
		if rt.stopper != nil {
			rt.stopper.RequestStop()
		}
		return
	}

	if rt.hidden(req.Path) {
		writeNotFound(w, r.URL.Path)
		return
	}

	if len(req.Segments) > 0 {
		if lk := rt.table.Lookup(req.Segments[0]); lk.Kind == remap.Found {
			rt.serveRemapped(w, r.URL.Path, req.Segments, lk.Dir)
			return
		}
	}

	rt.static.ServeHTTP(w, r)
}

// serveRemapped answers a request whose first segment is a remap root.
// A missing file is a 404; it never falls through to static serving.
func (rt *Router) serveRemapped(w http.ResponseWriter, urlPath string, segments []string, dir string) {
	mapped := remap.Resolve(dir, segments)
	res := remap.ReadFile(mapped)
	switch res.Kind {
	case remap.FileOK:
		rt.log.Info("remapped request", "path", urlPath, "file", mapped)
		writeFile(w, res.Body)
	default:
		rt.log.Warn("remapped file not found", "path", urlPath, "file", mapped, "error", res.Err)
		writeNotFound(w, urlPath)
	}
}

func (rt *Router) hidden(cleaned string) bool {
	return matchHidden(rt.hide, cleaned)
}
