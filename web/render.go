package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/shopmini/storefront/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded page templates. A render failure after the
// body has started writing can only be logged; headers are already gone.
type Renderer struct {
	tmpl *template.Template
	log  *logger.Logger
}

func NewRenderer(log *logger.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tmpl: tmpl,
		log:  log.With("component", "renderer"),
	}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error("render template", "template", name, "error", err)
	}
}
