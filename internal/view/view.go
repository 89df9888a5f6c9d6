package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page names understood by Render.
const (
	PageEvents   = "events"
	PageProjects = "projects"
	PageError    = "error"
)

var icons = map[string]string{
	"calendar":      "📅",
	"clock":         "🕒",
	"map-pin":       "📍",
	"users":         "👥",
	"trophy":        "🏆",
	"github":        "⌥",
	"external-link": "↗",
	"file-text":     "📄",
	"lightbulb":     "💡",
	"rocket":        "🚀",
}

// Layout carries the chrome shared by every page around its content.
type Layout struct {
	SiteName string
	Title    string
	Active   string
	Year     int
	Content  interface{}
}

// Views holds the parsed page templates.
type Views struct {
	siteName  string
	templates *template.Template
}

// New parses the embedded templates.
func New(siteName string) (*Views, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"icon": iconFor,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Views{siteName: siteName, templates: tmpl}, nil
}

// Templates exposes the template set, e.g. for gin's SetHTMLTemplate.
func (v *Views) Templates() *template.Template {
	return v.templates
}

// Wrap places page content inside the shared layout.
func (v *Views) Wrap(title, active string, content interface{}) Layout {
	return Layout{SiteName: v.siteName, Title: title, Active: active, Year: time.Now().Year(), Content: content}
}

// Render executes the named page into a buffer so a failed render never
// writes a partial response.
func (v *Views) Render(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func iconFor(name string) string {
	if glyph, ok := icons[name]; ok {
		return glyph
	}
	return ""
}
