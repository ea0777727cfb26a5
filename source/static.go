package source

import (
	"fmt"
	"image"
)

// StaticPage is an in-memory Page. Hosts that already hold decoded content
// (or tests) can hand it to the pipeline directly.
type StaticPage struct {
	Runs     []TextRun
	Ops      []Operator
	W, H     float64
	Rendered image.Image // optional; nil means Render is unsupported
}

// TextRuns returns the page's text runs.
func (p *StaticPage) TextRuns() ([]TextRun, error) {
	return p.Runs, nil
}

// Operators returns the page's operator stream.
func (p *StaticPage) Operators() ([]Operator, error) {
	return p.Ops, nil
}

// Size returns the page dimensions in points.
func (p *StaticPage) Size() (float64, float64) {
	return p.W, p.H
}

// Render returns the pre-rendered raster if one was supplied.
func (p *StaticPage) Render(scale float64) (image.Image, error) {
	if p.Rendered == nil {
		return nil, ErrRenderUnsupported
	}
	return p.Rendered, nil
}

// StaticDocument is an in-memory Document backed by a slice of pages.
type StaticDocument struct {
	Pages []*StaticPage
}

// PageCount returns the number of pages.
func (d *StaticDocument) PageCount() int {
	return len(d.Pages)
}

// Page returns the page at the given zero-based index.
func (d *StaticDocument) Page(index int) (Page, error) {
	if index < 0 || index >= len(d.Pages) {
		return nil, fmt.Errorf("source: page index %d out of range [0,%d)", index, len(d.Pages))
	}
	return d.Pages[index], nil
}

// Close is a no-op for in-memory documents.
func (d *StaticDocument) Close() error {
	return nil
}
