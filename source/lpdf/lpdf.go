// Package lpdf adapts github.com/ledongthuc/pdf to the source interfaces.
// The library exposes positioned text fragments but no operator stream or
// rasterizer, so pages report no operators and refuse to render.
package lpdf

import (
	"fmt"
	"image"
	"io"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

type document struct {
	file   io.Closer
	reader *lpdf.Reader
}

// Open opens a PDF file for extraction.
func Open(path string) (source.Document, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &document{file: f, reader: r}, nil
}

func (d *document) PageCount() int {
	return d.reader.NumPage()
}

// Page returns the zero-based page. The underlying reader numbers pages
// from 1.
func (d *document) Page(index int) (source.Page, error) {
	if index < 0 || index >= d.reader.NumPage() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, d.reader.NumPage())
	}
	p := d.reader.Page(index + 1)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d is missing from the page tree", index)
	}
	return &page{page: p}, nil
}

func (d *document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

type page struct {
	page lpdf.Page
}

func (p *page) Size() (width, height float64) {
	width, height = 612.0, 792.0
	mediaBox := p.page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		x0 := mediaBox.Index(0).Float64()
		y0 := mediaBox.Index(1).Float64()
		x1 := mediaBox.Index(2).Float64()
		y1 := mediaBox.Index(3).Float64()
		width = x1 - x0
		height = y1 - y0
	}
	return width, height
}

// TextRuns maps the reader's positioned fragments to runs. The reader
// has already applied the page's transformations, so each run carries a
// plain translate-and-scale matrix built from its font size and origin.
func (p *page) TextRuns() ([]source.TextRun, error) {
	content := p.page.Content()
	runs := make([]source.TextRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, source.TextRun{
			Text:     t.S,
			Width:    t.W,
			FontName: t.Font,
			Transform: model.Matrix{
				t.FontSize, 0, 0, t.FontSize, t.X, t.Y,
			},
		})
	}
	return runs, nil
}

// Operators is empty: the library resolves content streams internally
// and does not expose the raw operator list.
func (p *page) Operators() ([]source.Operator, error) {
	return nil, nil
}

func (p *page) Render(scale float64) (image.Image, error) {
	return nil, source.ErrRenderUnsupported
}
