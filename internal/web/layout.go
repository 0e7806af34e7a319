package web

import (
	"fmt"
	"html/template"
)

// Standard block names every page layout declares.
const (
	BlockTitle   = "title"
	BlockHead    = "head"
	BlockContent = "content"
	BlockScripts = "scripts"
)

// Blocks maps a block name to its body. Bodies are pre-rendered HTML
// fragments; pages build them with the shared Renderer before composing.
type Blocks map[string]template.HTML

// BlockOverrideError reports an override for a block the layout never
// declared. Overriding unknown blocks is always an error here: a typo in
// a block name would otherwise silently drop page content.
type BlockOverrideError struct {
	Block string
}

func (e BlockOverrideError) Error() string {
	return fmt.Sprintf("web: override for undeclared block %q", e.Block)
}

// Layout is the base page skeleton: the set of declared blocks and their
// default bodies. The title default is the site name; everything else
// defaults to empty.
type Layout struct {
	defaults Blocks
}

// NewLayout returns the standard four-block layout with siteName as the
// default title.
func NewLayout(siteName string) *Layout {
	return &Layout{defaults: Blocks{
		BlockTitle:   template.HTML(template.HTMLEscapeString(siteName)),
		BlockHead:    "",
		BlockContent: "",
		BlockScripts: "",
	}}
}

// Declared reports whether the layout declares the named block.
func (l *Layout) Declared(name string) bool {
	_, ok := l.defaults[name]
	return ok
}

// Resolve merges a page's overrides over the layout defaults. Each declared
// block resolves to exactly one body: the override when present, the default
// otherwise. An override for an undeclared block fails with
// BlockOverrideError.
func (l *Layout) Resolve(overrides Blocks) (Blocks, error) {
	for name := range overrides {
		if !l.Declared(name) {
			return nil, BlockOverrideError{Block: name}
		}
	}
	resolved := make(Blocks, len(l.defaults))
	for name, def := range l.defaults {
		if body, ok := overrides[name]; ok {
			resolved[name] = body
		} else {
			resolved[name] = def
		}
	}
	return resolved, nil
}
