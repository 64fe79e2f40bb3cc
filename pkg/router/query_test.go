package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Query
	}{
		{name: "empty", raw: "", want: Query{}},
		{name: "single pair", raw: "quit=1", want: Query{"quit": "1"}},
		{name: "missing equals defaults to empty", raw: "quit", want: Query{"quit": ""}},
		{name: "splits on first equals only", raw: "a=b=c", want: Query{"a": "b=c"}},
		{name: "last duplicate wins", raw: "quit=0&quit=1", want: Query{"quit": "1"}},
		{name: "values are not unescaped", raw: "q=a%20b", want: Query{"q": "a%20b"}},
		{name: "empty pieces", raw: "a=1&&b", want: Query{"a": "1", "": "", "b": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseQuery(tt.raw))
		})
	}
}

func TestQuery_ShutdownRequested(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"quit=1", true},
		{"quit=10", true},
		{"quit=yes1", true},
		{"quit=0&quit=1", true},
		{"foo=bar&quit=1", true},
		{"quit=1&quit=0", false},
		{"quit=0", false},
		{"quit", false},
		{"quit=", false},
		{"QUIT=1", false},
		{"other=1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseQuery(tt.raw).ShutdownRequested())
		})
	}
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in           string
		wantCleaned  string
		wantSegments []string
	}{
		{"/", "/", nil},
		{"", "/", nil},
		{"/closure/goog/base.js", "/closure/goog/base.js", []string{"closure", "goog", "base.js"}},
		{"closure/goog/base.js", "/closure/goog/base.js", []string{"closure", "goog", "base.js"}},
		{"/a//b/", "/a/b", []string{"a", "b"}},
		{"/closure/../secret.txt", "/secret.txt", []string{"secret.txt"}},
		{"/../../etc/passwd", "/etc/passwd", []string{"etc", "passwd"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			cleaned, segments := SplitPath(tt.in)
			assert.Equal(t, tt.wantCleaned, cleaned)
			assert.Equal(t, tt.wantSegments, segments)
		})
	}
}

func TestParseRequest(t *testing.T) {
	t.Parallel()

	req := ParseRequest("GET", "/jsunit/app/test.html", "quit=0&x")
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/jsunit/app/test.html", req.Path)
	assert.Equal(t, []string{"jsunit", "app", "test.html"}, req.Segments)
	assert.Equal(t, Query{"quit": "0", "x": ""}, req.Query)
}
