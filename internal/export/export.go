// Package export renders a palette into files other tools can consume.
package export

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/colourcraft/internal/palette"
)

// Exporter renders a palette in one output format.
type Exporter interface {
	// Name returns the format name used on the command line (e.g. "css").
	Name() string

	// Description returns a human-readable description of the format.
	Description() string

	// Filename returns the default output file name.
	Filename() string

	// Binary reports whether the output is not text and must go to a file.
	Binary() bool

	// Generate renders p.
	Generate(p palette.Palette) ([]byte, error)
}

// Registry holds the available exporters by name.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]Exporter),
	}
}

// DefaultRegistry returns a registry holding every built-in format.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewCSS())
	r.Register(NewTailwind())
	r.Register(NewSCSS())
	r.Register(NewPNG())
	return r
}

// Register adds an exporter, replacing any with the same name.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns a copy of the registered exporters.
func (r *Registry) All() map[string]Exporter {
	out := make(map[string]Exporter, len(r.exporters))
	for name, e := range r.exporters {
		out[name] = e
	}
	return out
}

// Render looks up name and generates p with it.
func (r *Registry) Render(name string, p palette.Palette) ([]byte, Exporter, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown export format %q (available: %v)", name, r.List())
	}
	data, err := e.Generate(p)
	if err != nil {
		return nil, e, fmt.Errorf("%s export: %w", name, err)
	}
	return data, e, nil
}
