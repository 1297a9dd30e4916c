// Package web serves the embedded upload page.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var content embed.FS

// Files returns the page assets rooted at the static directory
func Files() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Handler serves index.html at "/" and "/index.html" and assets under "/static/"
type Handler struct {
	files fs.FS
}

// NewHandler creates a handler over the embedded assets
func NewHandler() *Handler {
	return &Handler{files: Files()}
}

// ServeHTTP serves the requested asset
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean(r.URL.Path)
	switch {
	case name == "/" || name == "/index.html":
		name = "index.html"
	case strings.HasPrefix(name, "/static/"):
		name = strings.TrimPrefix(name, "/static/")
	default:
		http.NotFound(w, r)
		return
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", ContentType(name))
	if name != "index.html" {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

// ContentType returns the content type for an asset name
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
