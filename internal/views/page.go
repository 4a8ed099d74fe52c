package views

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// DOM names the classes the page and its script agree on. The script looks
// every element up once at start and refuses to run if one is missing.
type DOM struct {
	JobInput  string
	CityInput string
	Results   string
	Loading   string
	Container string
	Card      string

	ActiveClass string
	ShowClass   string
	HideClass   string
}

var DefaultDOM = DOM{
	JobInput:    "input-job",
	CityInput:   "input-city",
	Results:     "results",
	Loading:     "loading",
	Container:   "container",
	Card:        "job-card",
	ActiveClass: "active",
	ShowClass:   "show",
	HideClass:   "hide",
}

// RevealOptions configures the card intersection observer.
type RevealOptions struct {
	RootMargin string
	Threshold  float64
}

var DefaultReveal = RevealOptions{
	RootMargin: "0px",
	Threshold:  0.1,
}

const (
	ScriptPath      = "/static/app.js"
	StylesheetPath  = "/static/app.css"
	PlaceholderPath = "/imgs/placeholder280x160.svg"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Job Search</title>
	<link rel="stylesheet" href="{{.Stylesheet}}">
	<script src="{{.Script}}" defer></script>
</head>
<body>
	<div class="{{.DOM.Container}}">
		<form method="get" action="/search" autocomplete="off">
			<label>Job <input class="{{.DOM.JobInput}}" type="text" name="what" placeholder="e.g. golang developer"></label>
			<label>City <input class="{{.DOM.CityInput}}" type="text" name="where" placeholder="e.g. london"></label>
			<button type="submit">Search</button>
		</form>
		<div class="{{.DOM.Loading}}"><span>Loading…</span></div>
		{{- if .Error}}
		<div class="error">{{.Error}}</div>
		{{- end}}
		<div class="{{.DOM.Results}}">{{.Results}}</div>
	</div>
</body>
</html>
`

// PageData fills the page. Results is markup from Renderer.RenderResults.
type PageData struct {
	Results template.HTML
	Error   string
}

type Page struct {
	tmpl   *template.Template
	dom    DOM
	script []byte
}

func NewPage(dom DOM, reveal RevealOptions, searchEndpoint string) (*Page, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	script, err := buildScript(dom, reveal, searchEndpoint)
	if err != nil {
		return nil, err
	}
	return &Page{
		tmpl:   tmpl,
		dom:    dom,
		script: script,
	}, nil
}

func (p *Page) Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, struct {
		PageData
		DOM        DOM
		Script     string
		Stylesheet string
	}{
		PageData:   data,
		DOM:        p.dom,
		Script:     ScriptPath,
		Stylesheet: StylesheetPath,
	})
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (p *Page) Script() []byte {
	return p.script
}

// Trusted marks markup produced by Renderer as safe to embed in the page.
func Trusted(html string) template.HTML {
	return template.HTML(html)
}
