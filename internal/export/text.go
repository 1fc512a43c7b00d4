package export

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/jmylchreest/colourcraft/internal/palette"
)

//go:embed templates/*.tmpl
var templates embed.FS

// TemplateData is passed to every text template.
type TemplateData struct {
	Colours []TemplateColour
}

// TemplateColour is one named palette entry.
type TemplateColour struct {
	Name string
	Hex  string
}

func newTemplateData(p palette.Palette) TemplateData {
	data := TemplateData{Colours: make([]TemplateColour, palette.Size)}
	for i, c := range p {
		data.Colours[i] = TemplateColour{Name: palette.Names[i], Hex: c.Hex()}
	}
	return data
}

// TextExporter renders a palette through an embedded text/template.
type TextExporter struct {
	name        string
	description string
	filename    string
	template    string
}

// NewCSS returns the CSS custom properties exporter.
func NewCSS() *TextExporter {
	return &TextExporter{
		name:        "css",
		description: "CSS custom properties on :root",
		filename:    "palette.css",
		template:    "css.tmpl",
	}
}

// NewTailwind returns the tailwind.config.js exporter.
func NewTailwind() *TextExporter {
	return &TextExporter{
		name:        "tailwind",
		description: "Tailwind CSS theme.extend.colors snippet",
		filename:    "tailwind.config.js",
		template:    "tailwind.tmpl",
	}
}

// NewSCSS returns the SCSS variables exporter.
func NewSCSS() *TextExporter {
	return &TextExporter{
		name:        "scss",
		description: "SCSS variables",
		filename:    "_palette.scss",
		template:    "scss.tmpl",
	}
}

// Name returns the format name.
func (e *TextExporter) Name() string { return e.name }

// Description returns the format description.
func (e *TextExporter) Description() string { return e.description }

// Filename returns the default output file name.
func (e *TextExporter) Filename() string { return e.filename }

// Binary is always false for text formats.
func (e *TextExporter) Binary() bool { return false }

// Generate renders p.
func (e *TextExporter) Generate(p palette.Palette) ([]byte, error) {
	tmplContent, err := templates.ReadFile("templates/" + e.template)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", e.name, err)
	}

	tmpl, err := template.New(e.template).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", e.name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(p)); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", e.name, err)
	}
	return buf.Bytes(), nil
}
