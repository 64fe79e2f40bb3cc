package router

import (
	"net/http"
)

const contentTypeHTML = "text/html"

// writeEmptyOK writes the reply to the shutdown command.
func writeEmptyOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(http.StatusOK)
}

// writeFile writes a remapped file. The content type is always text/html.
func writeFile(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeNotFound writes a 404 naming the requested path.
func writeNotFound(w http.ResponseWriter, requestPath string) {
	http.Error(w, "File Not Found: "+requestPath, http.StatusNotFound)
}

// writeNotImplemented writes a 501 for methods the server does not handle.
func writeNotImplemented(w http.ResponseWriter, method string) {
	http.Error(w, "Unsupported method ("+method+")", http.StatusNotImplemented)
}
