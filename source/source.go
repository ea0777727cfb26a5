// Package source defines the content accessor boundary: the abstract
// interface through which a PDF engine supplies per-page text runs and
// drawing operators to the reconstruction pipeline.
//
// The pipeline never touches the PDF container format itself. Any engine
// that can produce positioned text runs and an operator stream can back a
// Document; StaticDocument provides an in-memory implementation and the
// lpdf subpackage adapts a real PDF reader.
package source

import (
	"errors"
	"image"

	"github.com/tsawler/strata/model"
)

// ErrRenderUnsupported is returned by Page.Render when the backing engine
// cannot rasterize pages. The fallback path substitutes a blank raster.
var ErrRenderUnsupported = errors.New("source: page rendering not supported")

// TextRun is one positioned run of characters as the engine decoded it.
// Transform places the run's text-space origin on the page; Width is the
// advance width the engine declared for the whole run, in points, and may
// be zero when unknown.
//
// Color is the fill color in effect when the run was painted, as
// normalized RGBA components in 0..1. Engines that walk content streams
// derive it from the gray/RGB/CMYK color operators (graphicsstate.State
// does the normalization); a zero-alpha value means the engine does not
// expose color and the run renders as opaque black.
type TextRun struct {
	Text      string
	Transform model.Matrix
	Width     float64
	FontName  string
	Color     [4]float64
}

// Opcode identifies a drawing operator.
type Opcode int

const (
	// OpSave pushes the graphics state (q).
	OpSave Opcode = iota
	// OpRestore pops the graphics state (Q).
	OpRestore
	// OpConcat composes a matrix onto the CTM (cm). Args holds a..f.
	OpConcat
	// OpPaintImage paints the image in Image, mapped through the CTM (Do).
	OpPaintImage
	// OpPathSegment is any path construction operator (m, l, c, re, h).
	OpPathSegment
	// OpPathPaint strokes and/or fills the current path (S, f, B, ...).
	OpPathPaint
	// OpSetGray sets the fill color from a single gray component.
	OpSetGray
	// OpSetRGB sets the fill color from r, g, b components.
	OpSetRGB
	// OpSetCMYK sets the fill color from c, m, y, k components.
	OpSetCMYK
)

// Operator is one drawing command from a page's content stream.
type Operator struct {
	Op    Opcode
	Args  []float64
	Image *ImageData // set for OpPaintImage only
}

// ImageData is the decoded pixel payload of a painted image. Data holds
// one of three layouts, distinguished by length: Width*Height bytes
// (8-bit grayscale), Width*Height*3 (RGB), or Width*Height*4 (RGBA).
type ImageData struct {
	Name   string
	Width  int
	Height int
	Data   []byte
}

// Page exposes the content of a single page. Implementations are treated
// as read-only by the pipeline, so one Page may safely back several
// sessions.
type Page interface {
	// TextRuns returns the positioned text runs of the page.
	TextRuns() ([]TextRun, error)

	// Operators returns the page's drawing command stream in paint order.
	Operators() ([]Operator, error)

	// Size returns the page width and height in points.
	Size() (width, height float64)

	// Render rasterizes the full page at the given scale (1.0 = 72 dpi).
	// Engines without a renderer return ErrRenderUnsupported.
	Render(scale float64) (image.Image, error)
}

// Document is an open document handle. Page indexes are zero-based.
type Document interface {
	PageCount() int
	Page(index int) (Page, error)
	Close() error
}
