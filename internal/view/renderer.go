package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"SecureBank/internal/messages"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names, one per page.
const (
	TemplatePrediction = "prediction"
	TemplateDashboard  = "dashboard"
	TemplateInsights   = "insights"
	TemplateModelInfo  = "model-info"
)

var pageFiles = map[string]string{
	TemplatePrediction: "templates/prediction.html",
	TemplateDashboard:  "templates/dashboard.html",
	TemplateInsights:   "templates/insights.html",
	TemplateModelInfo:  "templates/modelinfo.html",
}

// Document is what the layout template receives.
type Document struct {
	Page    string
	Title   string
	Lang    string
	Nav     []NavItem
	Content interface{}
}

// Renderer renders the pages in one locale. It implements echo.Renderer.
type Renderer struct {
	cat   *messages.Catalog
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer(cat *messages.Catalog) (*Renderer, error) {
	r := &Renderer{cat: cat, pages: make(map[string]*template.Template, len(pageFiles))}
	funcs := r.funcs()
	for name, file := range pageFiles {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page name with content wrapped in the layout. The page is
// rendered into a buffer first so a template error never leaves a partial
// response.
func (r *Renderer) Render(w io.Writer, name string, content interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	doc := Document{
		Page:    name,
		Title:   r.cat.T("app.title"),
		Lang:    r.cat.Locale(),
		Nav:     Navigation(r.cat, name),
		Content: content,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", doc); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"t":           r.cat.T,
		"probability": FormatProbability,
		"ratio":       FormatRatio,
		"dec3":        FormatDecimal3,
		"thousands":   FormatThousands,
		"pct":         func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"num":         func(v float64) string { return fmt.Sprintf("%g", v) },
		"coord":       func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"css":         func(s string) template.CSS { return template.CSS(s) },
		"seq":         seq,
	}
}

func seq(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
