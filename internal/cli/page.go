package cli

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"

	"github.com/reoring/chartopts"
	"github.com/reoring/chartopts/chart"
	"github.com/reoring/chartopts/internal/document"
)

//go:embed assets/runtime.js
var runtimeJS string

//go:embed assets/page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

const (
	defaultPageWidth  = "100%"
	defaultPageHeight = "480px"
)

type pageData struct {
	Title      string
	EChartsURL string
	RuntimeURL string
	Runtime    template.JS
	Alias      template.JS
	ID         string
	Width      string
	Height     string
	Script     template.JS
}

// chartFor binds a document to rt with the serializer settings of cfg.
func chartFor(doc *document.Document, rt chart.Runtime, cfg Config, indent string) *chart.Chart {
	c := doc.Chart(rt)
	c.Settings = chartopts.Settings{
		GraphicNamespace: cfg.GraphicNamespace,
		RuntimeNamespace: cfg.RuntimeNamespace,
		Indent:           indent,
	}
	// Namespaces come from configuration, so the shared rule set is not
	// used.
	c.NoCache = true
	return c
}

// initScript records the initChart call for the document.
func initScript(ctx context.Context, doc *document.Document, cfg Config) (*chart.Chart, string, error) {
	rt := &chart.ScriptRuntime{}
	c := chartFor(doc, rt, cfg, "")
	if err := c.Init(ctx); err != nil {
		return nil, "", err
	}
	return c, rt.Script(), nil
}

// renderPage returns a standalone HTML page showing the document. With an
// empty runtimeURL the runtime script is inlined.
func renderPage(ctx context.Context, doc *document.Document, cfg Config, runtimeURL string) ([]byte, error) {
	c, script, err := initScript(ctx, doc, cfg)
	if err != nil {
		return nil, err
	}
	data := pageData{
		Title:      c.ID,
		EChartsURL: cfg.EChartsURL,
		RuntimeURL: runtimeURL,
		Runtime:    template.JS(runtimeJS),
		ID:         c.ID,
		Width:      firstNonEmpty(doc.Width, defaultPageWidth),
		Height:     firstNonEmpty(doc.Height, defaultPageHeight),
		Script:     template.JS(script),
	}
	if ns := cfg.RuntimeNamespace; ns != "" && ns != chartopts.DefaultRuntimeNamespace {
		data.Alias = template.JS(ns + " = " + chartopts.DefaultRuntimeNamespace + ";")
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
