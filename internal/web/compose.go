package web

import (
	"html/template"
	"io"
)

// ComposeInput carries everything one render needs. All fields are
// request-scoped and read-only; Compose keeps nothing between calls, so a
// single Composer is safe for concurrent requests.
type ComposeInput struct {
	Auth      AuthState
	Resolve   RouteResolver
	Flashes   []Flash
	Overrides Blocks
}

// pageView is the data the base template executes against.
type pageView struct {
	Title   template.HTML
	Head    template.HTML
	Nav     []NavEntry
	Flashes []FlashView
	Content template.HTML
	Scripts template.HTML
}

// Composer assembles full documents from a layout, a renderer and
// per-request input.
type Composer struct {
	Layout   *Layout
	Renderer *Renderer
}

func NewComposer(siteName string, r *Renderer) *Composer {
	return &Composer{Layout: NewLayout(siteName), Renderer: r}
}

// Compose writes one complete document: resolved blocks, then navigation,
// then flash views, assembled as head, nav, flash area, content, scripts.
// Block and navigation failures abort the render before anything is
// written; flash preparation cannot fail.
func (c *Composer) Compose(w io.Writer, in ComposeInput) error {
	blocks, err := c.Layout.Resolve(in.Overrides)
	if err != nil {
		return err
	}
	nav, err := Navigation(in.Auth, in.Resolve)
	if err != nil {
		return err
	}
	view := pageView{
		Title:   blocks[BlockTitle],
		Head:    blocks[BlockHead],
		Nav:     nav,
		Flashes: FlashViews(in.Flashes),
		Content: blocks[BlockContent],
		Scripts: blocks[BlockScripts],
	}
	return c.Renderer.execute(w, "base", view)
}
