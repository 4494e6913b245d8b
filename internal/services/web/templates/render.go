package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var htmlFS embed.FS

// baseTemplate is parsed once and cloned per render so each render can bind
// its own localizer. It is never executed directly.
var baseTemplate = template.Must(template.New("web").Funcs(templateFuncs(nil, "")).ParseFS(htmlFS, "html/*.html"))

// render returns a component executing the named html template with data.
// Children passed through templ.WithChildren are available as {{children}}.
func render(name string, loc Localizer, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var children template.HTML
		if child := templ.GetChildren(ctx); child != nil {
			html, err := templ.ToGoHTML(templ.ClearChildren(ctx), child)
			if err != nil {
				return err
			}
			children = html
		}
		tmpl, err := baseTemplate.Clone()
		if err != nil {
			return err
		}
		tmpl.Funcs(templateFuncs(loc, children))
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

func templateFuncs(loc Localizer, children template.HTML) template.FuncMap {
	return template.FuncMap{
		"t": func(key string, args ...any) string {
			return T(loc, key, args...)
		},
		"children": func() template.HTML {
			return children
		},
		"inr": func(amount float64) string {
			return FormatINR(loc, amount)
		},
		"num": func(value float64) string {
			return FormatNumber(loc, value)
		},
		"pct": func(value float64) string {
			return FormatPercent(loc, value)
		},
		"date": FormatDate,
		"tone": StatusTone,
	}
}
