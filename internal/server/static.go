package server

import (
	"bytes"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// reloadScript is injected into HTML pages when live reload is on.
const reloadScript = `<script>new EventSource("` + ReloadPath + `").addEventListener("reload",function(){location.reload()})</script>`

// precompressed lists the sibling encodings the build can produce, in preference order.
var precompressed = []struct {
	encoding string
	ext      string
}{
	{"br", ".br"},
	{"gzip", ".gz"},
}

// handleStatic serves files from the output directory without directory listings.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)
	name := filepath.Join(s.dir, filepath.FromSlash(urlPath))

	info, err := os.Stat(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if info.IsDir() {
		name = filepath.Join(name, "index.html")
		info, err = os.Stat(name)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
	}

	if s.liveReload && strings.HasSuffix(name, ".html") {
		s.serveWithReload(w, r, name, info)
		return
	}

	if s.servePrecompressed(w, r, name) {
		return
	}

	f, err := os.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// servePrecompressed serves name.br or name.gz when the client accepts it.
func (s *Server) servePrecompressed(w http.ResponseWriter, r *http.Request, name string) bool {
	accept := r.Header.Get("Accept-Encoding")
	for _, p := range precompressed {
		if !acceptsEncoding(accept, p.encoding) {
			continue
		}
		f, err := os.Open(name + p.ext)
		if err != nil {
			continue
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil {
			continue
		}

		if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
			w.Header().Set("Content-Type", ctype)
		}
		w.Header().Set("Content-Encoding", p.encoding)
		w.Header().Add("Vary", "Accept-Encoding")
		http.ServeContent(w, r, name, info.ModTime(), f)
		return true
	}
	return false
}

func (s *Server) serveWithReload(w http.ResponseWriter, r *http.Request, name string, info os.FileInfo) {
	page, err := os.ReadFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, name, info.ModTime(), bytes.NewReader(injectReload(page)))
}

// injectReload inserts the reload script before </body>, or appends it.
func injectReload(page []byte) []byte {
	idx := bytes.LastIndex(page, []byte("</body>"))
	if idx < 0 {
		return append(page, reloadScript...)
	}
	out := make([]byte, 0, len(page)+len(reloadScript))
	out = append(out, page[:idx]...)
	out = append(out, reloadScript...)
	return append(out, page[idx:]...)
}

func acceptsEncoding(header, encoding string) bool {
	for _, part := range strings.Split(header, ",") {
		token, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(token), encoding) {
			continue
		}
		if q := strings.TrimSpace(params); q == "q=0" || q == "q=0.0" {
			return false
		}
		return true
	}
	return false
}
