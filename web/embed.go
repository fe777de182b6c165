// Package web holds the server-rendered HTML templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"money":   money,
	"isoDate": isoDate,
	"typeOf":  models.TypeOf,
}

// Templates parses every embedded template. Each page is addressable by its
// file name, e.g. "dashboard.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// MustTemplates is Templates for program start-up and tests.
func MustTemplates() *template.Template {
	tmpl, err := Templates()
	if err != nil {
		panic(err)
	}
	return tmpl
}

func money(v any) string {
	switch a := v.(type) {
	case decimal.Decimal:
		return a.StringFixed(2)
	case float64:
		return report.FormatAmount(a)
	default:
		return fmt.Sprint(v)
	}
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}
