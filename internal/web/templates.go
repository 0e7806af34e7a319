package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/Masterminds/sprig/v3"
)

//go:embed tpl/*.tmpl
//go:embed tpl/**/*.tmpl
var tplFS embed.FS

// Renderer parses the embedded template set once and renders named
// fragments from it.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"nowUTC": func() time.Time { return time.Now().UTC() },
	}
	t := template.New("root").Funcs(funcs).Funcs(sprig.FuncMap())
	t, err := t.ParseFS(tplFS, "tpl/*.tmpl", "tpl/partials/*.tmpl", "tpl/pages/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: t}, nil
}

// Fragment renders the named page template to an HTML body, for use as a
// block override.
func (r *Renderer) Fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	return r.tpl.ExecuteTemplate(w, name, data)
}
