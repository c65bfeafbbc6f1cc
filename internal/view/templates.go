package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"multiservicios/internal/display"
	"multiservicios/web"
)

// Engine renders the embedded HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData is what every page template receives.
type TemplateData struct {
	Title       string
	CurrentPath string
	TraceID     string
	Data        any
}

func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"quetzales": display.Quetzales,
		"amount":    display.Amount,
		"orDash": func(s string) string {
			if s == "" {
				return display.Placeholder
			}
			return s
		},
		"add": func(a, b int) int { return a + b },
		"active": func(current, prefix string) bool {
			if prefix == "/" {
				return current == "/"
			}
			return len(current) >= len(prefix) && current[:len(prefix)] == prefix
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates,
		"templates/layouts/*.html",
		"templates/partials/*.html",
		"templates/pages/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Engine{templates: tpl}, nil
}

// Render executes name into a buffer first so a template failure never
// leaves a half-written page behind.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
