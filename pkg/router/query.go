package router

import (
	"path"
	"strings"
)

// QuitKey is the query key of the shutdown command.
const QuitKey = "quit"

// Query holds parsed query parameters. When a key repeats, the last value wins.
type Query map[string]string

// ParseQuery splits a raw query string on '&' and each pair on its first '='.
// A pair without '=' maps to the empty string. Values are not unescaped.
func ParseQuery(raw string) Query {
	q := make(Query)
	if raw == "" {
		return q
	}
	for _, pair := range strings.Split(raw, "&") {
		key, value, _ := strings.Cut(pair, "=")
		q[key] = value
	}
	return q
}

// ShutdownRequested reports whether the query carries the shutdown command.
func (q Query) ShutdownRequested() bool {
	v, ok := q[QuitKey]
	return ok && strings.Contains(v, "1")
}

// Request is the part of an HTTP request the router looks at.
type Request struct {
	Method   string
	Path     string
	Segments []string
	Query    Query
}

// SplitPath cleans a URL path and splits it into segments. The leading
// separator is ignored, so "/a/b" and "a/b" give the same result, and ".."
// elements are resolved before splitting. The root path has no segments.
func SplitPath(p string) (cleaned string, segments []string) {
	cleaned = path.Clean("/" + p)
	trimmed := strings.TrimPrefix(cleaned, "/")
	if trimmed == "" {
		return cleaned, nil
	}
	return cleaned, strings.Split(trimmed, "/")
}

// ParseRequest extracts the routing inputs from method, URL path and raw query.
func ParseRequest(method, urlPath, rawQuery string) Request {
	cleaned, segments := SplitPath(urlPath)
	return Request{
		Method:   method,
		Path:     cleaned,
		Segments: segments,
		Query:    ParseQuery(rawQuery),
	}
}
