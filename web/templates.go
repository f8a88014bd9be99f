package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates
var files embed.FS

// pages lists every renderable page. Each page file defines "title" and
// "content" blocks that the shared layout pulls in.
var pages = []string{
	"home",
	"tasks/list",
	"tasks/form",
	"tasks/detail",
	"tasks/delete-confirm",
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates. It fails fast so a broken
// template is caught at boot, not on first render.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render writes the named page to w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
