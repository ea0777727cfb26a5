package strata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/strata/classify"
	"github.com/tsawler/strata/fonts"
	"github.com/tsawler/strata/graphicsstate"
	"github.com/tsawler/strata/imaging"
	"github.com/tsawler/strata/layout"
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
	"github.com/tsawler/strata/text"
)

// ErrNoDocument is returned when a session is created without a source
// document.
var ErrNoDocument = errors.New("strata: no source document")

// ErrSessionClosed is returned when an operation runs on a closed session.
var ErrSessionClosed = errors.New("strata: session is closed")

// Progress is invoked at least once per page during extraction.
// currentPage is 1-based.
type Progress func(currentPage, totalPages int, status string)

// defaultPage dimensions (US Letter) stand in when a page handle is
// unavailable.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Session owns one document import: the font-match cache, the raster
// sink, accumulated warnings, and the committed per-page results. Pages
// are processed strictly sequentially because these resources are shared,
// mutable, and unkeyed by page; a session must not be used from more than
// one goroutine. Concurrent work across documents gets one session each
// (see ExtractDocuments).
type Session struct {
	doc    source.Document
	opts   Options
	seg    *layout.Segmenter
	fonts  *fonts.Matcher
	sink   imaging.Sink
	images *imaging.Extractor

	ownsSink bool
	closed   bool

	warnings    []Warning
	pages       []model.PageData
	stats       []model.PageStats
	hierarchies map[int][]layout.ParagraphNode
	analysis    *model.DocumentAnalysis
}

// NewSession creates a session over an open document with default options.
func NewSession(doc source.Document) *Session {
	return NewSessionWithOptions(doc, DefaultOptions())
}

// NewSessionWithOptions creates a session with custom options.
func NewSessionWithOptions(doc source.Document, opts Options) *Session {
	sink := opts.Sink
	ownsSink := false
	if sink == nil {
		sink = imaging.NewMemorySink()
		ownsSink = true
	}
	return &Session{
		doc:         doc,
		opts:        opts,
		seg:         layout.NewSegmenterWithConfig(opts.Layout),
		fonts:       fonts.NewMatcher(opts.FontResolver),
		sink:        sink,
		images:      imaging.NewExtractor(sink),
		ownsSink:    ownsSink,
		hierarchies: make(map[int][]layout.ParagraphNode),
	}
}

// Extract reconstructs every page in order. Page N+1 is not started until
// page N's layers are committed; the progress callback fires at each page
// boundary, which is also where cancellation is honored. On cancellation
// the pages processed so far are returned along with the context error,
// but the session keeps nothing: a later Extract with a live context runs
// the whole document again. Only complete runs are cached.
func (s *Session) Extract(ctx context.Context, progress Progress) ([]model.PageData, []Warning, error) {
	if s.doc == nil {
		return nil, nil, ErrNoDocument
	}
	if s.closed {
		return nil, nil, ErrSessionClosed
	}
	if s.pages != nil {
		return s.pages, s.warnings, nil
	}

	// Discard leftovers from an interrupted run.
	s.warnings = nil
	s.hierarchies = make(map[int][]layout.ParagraphNode)

	total := s.doc.PageCount()
	pages := make([]model.PageData, 0, total)
	stats := make([]model.PageStats, 0, total)

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return pages, s.warnings, err
		}

		pageData, pageStats := s.extractPage(i)
		pages = append(pages, pageData)
		stats = append(stats, pageStats)

		if progress != nil {
			progress(i+1, total, fmt.Sprintf("reconstructed page %d of %d", i+1, total))
		}
	}

	s.pages = pages
	s.stats = stats
	return pages, s.warnings, nil
}

// Analyze classifies the document from the statistics gathered during
// extraction, running the extraction first if needed. The result is
// cached for the life of the session.
func (s *Session) Analyze(ctx context.Context) (model.DocumentAnalysis, error) {
	if s.analysis != nil {
		return *s.analysis, nil
	}
	if s.closed {
		return model.DocumentAnalysis{}, ErrSessionClosed
	}
	if s.pages == nil {
		if _, _, err := s.Extract(ctx, nil); err != nil {
			return model.DocumentAnalysis{}, err
		}
	}
	analysis := classify.Analyze(s.stats)
	s.analysis = &analysis
	return analysis, nil
}

// Hierarchy returns the paragraph tree for a page, or nil when the
// session was not configured with BuildHierarchy or the page has none.
func (s *Session) Hierarchy(pageIndex int) []layout.ParagraphNode {
	return s.hierarchies[pageIndex]
}

// Warnings returns the non-fatal problems accumulated so far.
func (s *Session) Warnings() []Warning {
	return s.warnings
}

// Close releases the session: the font cache and any session-owned raster
// sink are cleared together, and the source document is closed. Safe to
// call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.fonts.Reset()
	if s.ownsSink {
		if mem, ok := s.sink.(*imaging.MemorySink); ok {
			mem.Clear()
		}
	}
	s.pages = nil
	s.stats = nil
	s.analysis = nil
	s.hierarchies = nil
	if s.doc != nil {
		return s.doc.Close()
	}
	return nil
}

// extractPage runs the per-page pipeline: walk the operator stream,
// enhance and segment the text runs, extract images, then merge into one
// z-ordered layer list. Every failure inside the page degrades to a
// warning; the page itself always commits.
func (s *Session) extractPage(index int) (model.PageData, model.PageStats) {
	stats := model.PageStats{PageIndex: index}

	page, err := s.doc.Page(index)
	if err != nil {
		s.warn(WarnPageUnavailable, index, err.Error())
		return model.PageData{
			PageIndex: index,
			Width:     defaultPageWidth,
			Height:    defaultPageHeight,
			DPI:       s.opts.DPI,
		}, stats
	}

	width, height := page.Size()
	if width <= 0 || height <= 0 {
		width, height = defaultPageWidth, defaultPageHeight
	}

	runs, err := page.TextRuns()
	if err != nil {
		s.warn(WarnTextUnavailable, index, err.Error())
		runs = nil
	}
	ops, err := page.Operators()
	if err != nil {
		s.warn(WarnOperatorsUnavailable, index, err.Error())
		ops = nil
	}

	walk := graphicsstate.Walk(ops)
	items := text.Enhance(runs)
	lines := s.seg.SplitAllColumns(s.seg.Lines(items))

	textLayers := s.textLayers(lines, index, height)
	imageLayers, skipped := s.images.ExtractPage(walk.Images, index, height)
	for _, skip := range skipped {
		s.warn(WarnImageSkipped, index, skip.Error())
	}

	stats.TextObjects = len(runs)
	stats.ImageObjects = len(walk.Images)
	stats.PathObjects = walk.PathPaints
	for _, run := range runs {
		stats.CharCount += len([]rune(run.Text))
	}
	pageArea := width * height
	if pageArea > 0 {
		stats.ImageCoverage = clampRatio(coverage(imageLayers) / pageArea)
		stats.TextCoverage = clampRatio(coverage(textLayers) / pageArea)
	}

	var layers []model.Layer
	if len(textLayers) == 0 {
		// No recoverable text: the whole page becomes one locked
		// background raster so it still shows up in the editor. If even
		// the raster cannot be produced, an unrastered placeholder keeps
		// the one-visible-layer guarantee.
		fallback, err := s.images.FallbackLayer(page, index)
		if err != nil {
			s.warn(WarnPageFallback, index, fmt.Sprintf("fallback render failed: %v", err))
			fallback = placeholderLayer(index, width, height)
		} else {
			s.warn(WarnPageFallback, index, "no text layers; page rendered as background raster")
		}
		layers = []model.Layer{fallback}
	} else {
		layers = append(imageLayers, textLayers...)
	}
	mergeZOrder(layers)

	if s.opts.BuildHierarchy && len(lines) > 0 {
		paragraphs := s.seg.Paragraphs(lines)
		s.hierarchies[index] = s.seg.Hierarchy(paragraphs, height)
	}

	return model.PageData{
		PageIndex: index,
		Width:     width,
		Height:    height,
		DPI:       s.opts.DPI,
		Layers:    layers,
	}, stats
}

// textLayers converts segmented lines into text layers. zIndex starts at
// zero in reading order; the final order is settled by mergeZOrder.
func (s *Session) textLayers(lines []layout.Line, pageIndex int, pageHeight float64) []model.Layer {
	layers := make([]model.Layer, 0, len(lines))
	for i, line := range lines {
		dominant := dominantRun(line)
		bold, italic := fonts.StyleFromName(dominant.FontName)
		match := s.fonts.Match(dominant.FontName, bold, italic)

		weight := 400
		if bold {
			weight = 700
		}
		direction := "ltr"
		if line.Direction == text.RTL {
			direction = "rtl"
		}

		layers = append(layers, model.Layer{
			ID:         fmt.Sprintf("text-%d-%d", pageIndex, i),
			Type:       model.LayerTypeText,
			Bounds:     s.seg.LineBounds(line, pageHeight),
			ZIndex:     i,
			Visible:    true,
			Opacity:    1.0,
			Role:       model.RoleContent,
			Content:    line.Text,
			FontFamily: match.Family,
			FontSize:   line.MaxFontSize,
			FontWeight: weight,
			Italic:     italic,
			Color:      graphicsstate.HexColor(runColor(dominant)),
			Direction:  direction,
		})
	}
	return layers
}

// dominantRun returns the run of the line's largest item, matching the
// rule that larger glyphs dominate a line's appearance.
func dominantRun(line layout.Line) source.TextRun {
	var run source.TextRun
	largest := -1.0
	for _, item := range line.Items {
		if item.FontSize > largest {
			largest = item.FontSize
			run = item.Run
		}
	}
	return run
}

// runColor returns the run's declared fill color; zero alpha means the
// engine exposed none and the run renders as opaque black.
func runColor(run source.TextRun) [4]float64 {
	if run.Color[3] == 0 {
		return [4]float64{0, 0, 0, 1}
	}
	return run.Color
}

// placeholderLayer is the last-resort page layer: full-page, locked,
// background role, no raster asset. Emitted only when the fallback
// renderer fails, so no imported page ever comes back layerless.
func placeholderLayer(pageIndex int, width, height float64) model.Layer {
	return model.Layer{
		ID:      fmt.Sprintf("page-raster-%d", pageIndex),
		Type:    model.LayerTypeImage,
		Bounds:  model.Bounds{X: 0, Y: 0, Width: width, Height: height},
		Visible: true,
		Locked:  true,
		Opacity: 1.0,
		Role:    model.RoleBackground,
	}
}

// mergeZOrder settles final paint order: layers sort by Y ascending, ties
// broken by their pre-merge zIndex, and zIndex is reassigned to match so
// it always reflects the final order.
func mergeZOrder(layers []model.Layer) {
	sort.SliceStable(layers, func(i, j int) bool {
		if layers[i].Bounds.Y != layers[j].Bounds.Y {
			return layers[i].Bounds.Y < layers[j].Bounds.Y
		}
		return layers[i].ZIndex < layers[j].ZIndex
	})
	for i := range layers {
		layers[i].ZIndex = i
	}
}

func coverage(layers []model.Layer) float64 {
	area := 0.0
	for _, layer := range layers {
		area += layer.Bounds.Width * layer.Bounds.Height
	}
	return area
}

func clampRatio(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func (s *Session) warn(kind WarningKind, page int, message string) {
	s.warnings = append(s.warnings, Warning{Kind: kind, Page: page, Message: message})
}
