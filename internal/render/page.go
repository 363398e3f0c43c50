package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/woozymasta/podesmap/assets"
)

// Page executes the embedded page template and minifies the result.
// It is safe for concurrent use.
type Page struct {
	tmpl     *template.Template
	minifier *minify.M
	css      template.CSS
	js       template.JS
}

type pageData struct {
	*View
	CSS template.CSS
	JS  template.JS
}

// NewPage parses the template and minifies the inlined stylesheet and script.
func NewPage() (*Page, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)

	cssMin, err := m.String("text/css", assets.Style)
	if err != nil {
		return nil, fmt.Errorf("minify css: %w", err)
	}

	jsMin, err := m.String("text/javascript", assets.Script)
	if err != nil {
		return nil, fmt.Errorf("minify js: %w", err)
	}

	tmpl, err := template.New("index").Parse(assets.Index)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	return &Page{
		tmpl:     tmpl,
		minifier: m,
		css:      template.CSS(cssMin),
		js:       template.JS(jsMin),
	}, nil
}

// Write renders v to w.
func (p *Page) Write(w io.Writer, v *View) error {
	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, pageData{View: v, CSS: p.css, JS: p.js})
	if err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return p.minifier.Minify("text/html", w, &buf)
}
