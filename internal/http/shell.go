package http

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"sportagency/internal/session"
	"sportagency/internal/web"
)

// Shell renders complete pages: page fragment into the content block, then
// the composed document with navigation and any pending flash messages.
type Shell struct {
	siteName string
	composer *web.Composer
	renderer *web.Renderer
	resolve  web.RouteResolver
}

func NewShell(siteName string, resolve web.RouteResolver) (*Shell, error) {
	r, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Shell{
		siteName: siteName,
		composer: web.NewComposer(siteName, r),
		renderer: r,
		resolve:  resolve,
	}, nil
}

// pageSpec names the fragment template and its block overrides.
type pageSpec struct {
	Template string
	Title    string        // page title; "" keeps the site-name default
	Head     template.HTML // extra head markup, rarely set
	Scripts  template.HTML
}

// Render writes one page. Pending flash messages are consumed here, so
// they appear exactly once. Composition failures are configuration
// defects; they surface as 500 with nothing partial written.
func (s *Shell) Render(w http.ResponseWriter, r *http.Request, id web.Identity, pg pageSpec, content any) {
	flashes := session.Consume(w, r)

	body, err := s.renderer.Fragment(pg.Template, web.Page[any]{Identity: id, Content: content})
	if err != nil {
		slog.Error("render.fragment", "template", pg.Template, "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	overrides := web.Blocks{web.BlockContent: body}
	if pg.Title != "" {
		overrides[web.BlockTitle] = template.HTML(template.HTMLEscapeString(pg.Title + " - " + s.siteName))
	}
	if pg.Head != "" {
		overrides[web.BlockHead] = pg.Head
	}
	if pg.Scripts != "" {
		overrides[web.BlockScripts] = pg.Scripts
	}

	var buf bytes.Buffer
	err = s.composer.Compose(&buf, web.ComposeInput{
		Auth:      id.AuthState(),
		Resolve:   s.resolve,
		Flashes:   flashes,
		Overrides: overrides,
	})
	if err != nil {
		slog.Error("render.compose", "template", pg.Template, "err", err)
		http.Error(w, "compose error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
