package strata

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

func textRun(s string, size, x, y, width float64) source.TextRun {
	return source.TextRun{
		Text:      s,
		Width:     width,
		Transform: model.NewMatrix(size, 0, 0, size, x, y),
	}
}

func imageOps(w, h int, ctm [6]float64) []source.Operator {
	return []source.Operator{
		{Op: source.OpSave},
		{Op: source.OpConcat, Args: ctm[:]},
		{Op: source.OpPaintImage, Image: &source.ImageData{
			Name: "Im0", Width: w, Height: h, Data: make([]byte, w*h),
		}},
		{Op: source.OpRestore},
	}
}

func textPage() *source.StaticPage {
	return &source.StaticPage{
		W: 612, H: 792,
		Runs: []source.TextRun{
			textRun("Quarterly Report", 18, 72, 700, 160),
			textRun("Revenue grew in the third quarter", 12, 72, 660, 220),
			textRun("across all regions.", 12, 72, 645, 130),
		},
	}
}

// TestExtractTextPage tests the per-line layers of an ordinary text page
func TestExtractTextPage(t *testing.T) {
	session := NewSession(&source.StaticDocument{Pages: []*source.StaticPage{textPage()}})
	defer session.Close()

	pages, warns, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	page := pages[0]
	if page.Width != 612 || page.Height != 792 {
		t.Errorf("unexpected page geometry: %+v", page)
	}
	if len(page.Layers) != 3 {
		t.Fatalf("expected 3 text layers, got %d", len(page.Layers))
	}

	top := page.Layers[0]
	if top.Type != model.LayerTypeText {
		t.Errorf("expected text layer, got %s", top.Type)
	}
	if top.ID != "text-0-0" {
		t.Errorf("expected id text-0-0, got %s", top.ID)
	}
	if top.Content != "Quarterly Report" {
		t.Errorf("expected heading first, got %q", top.Content)
	}
	if top.FontSize != 18 {
		t.Errorf("expected heading font size 18, got %f", top.FontSize)
	}
	if top.FontFamily == "" {
		t.Error("expected a resolved font family")
	}
	if !top.Visible || top.Locked {
		t.Errorf("expected visible unlocked layer, got %+v", top)
	}
}

// TestExtractZOrder tests the z-order law: sorted by Y, reassigned 0..n-1
func TestExtractZOrder(t *testing.T) {
	page := textPage()
	page.Ops = imageOps(10, 10, [6]float64{100, 0, 0, 100, 300, 100})

	session := NewSession(&source.StaticDocument{Pages: []*source.StaticPage{page}})
	defer session.Close()

	pages, _, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	layers := pages[0].Layers
	if len(layers) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(layers))
	}
	for i, layer := range layers {
		if layer.ZIndex != i {
			t.Errorf("layer %d: expected zIndex %d, got %d", i, i, layer.ZIndex)
		}
		if i > 0 && layers[i-1].Bounds.Y > layer.Bounds.Y {
			t.Errorf("layer %d out of Y order: %f after %f", i, layer.Bounds.Y, layers[i-1].Bounds.Y)
		}
	}
	// The image sits near the page bottom, below all three text lines.
	if layers[3].Type != model.LayerTypeImage {
		t.Errorf("expected bottom layer to be the image, got %s", layers[3].Type)
	}
}

// TestExtractFallbackPage tests the empty-page guarantee: exactly one
// locked full-page background layer
func TestExtractFallbackPage(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		{W: 612, H: 792}, // nothing on the page
	}}
	session := NewSession(doc)
	defer session.Close()

	pages, warns, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	layers := pages[0].Layers
	if len(layers) != 1 {
		t.Fatalf("expected exactly 1 fallback layer, got %d", len(layers))
	}
	layer := layers[0]
	if layer.ID != "page-raster-0" {
		t.Errorf("expected id page-raster-0, got %s", layer.ID)
	}
	if layer.Role != model.RoleBackground || !layer.Locked {
		t.Errorf("expected locked background layer, got %+v", layer)
	}
	if layer.Bounds != (model.Bounds{X: 0, Y: 0, Width: 612, Height: 792}) {
		t.Errorf("expected full-page bounds, got %+v", layer.Bounds)
	}
	if layer.ZIndex != 0 {
		t.Errorf("expected reassigned zIndex 0, got %d", layer.ZIndex)
	}

	found := false
	for _, w := range warns {
		if w.Kind == WarnPageFallback && w.Page == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a page-fallback warning, got %v", warns)
	}
}

// TestExtractLayerColor tests that the dominant run's fill color reaches
// the emitted layer as a hex string, defaulting to black
func TestExtractLayerColor(t *testing.T) {
	red := textRun("Warning", 18, 72, 700, 80)
	red.Color = [4]float64{1, 0, 0, 1}
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		{W: 612, H: 792, Runs: []source.TextRun{
			red,
			textRun("Ordinary body text on the page", 12, 72, 660, 200),
		}},
	}}
	session := NewSession(doc)
	defer session.Close()

	pages, _, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	layers := pages[0].Layers
	if len(layers) != 2 {
		t.Fatalf("expected 2 text layers, got %d", len(layers))
	}

	if layers[0].Color != "#ff0000" {
		t.Errorf("expected red heading layer, got %q", layers[0].Color)
	}
	// A run with no exposed color renders as opaque black.
	if layers[1].Color != "#000000" {
		t.Errorf("expected default black, got %q", layers[1].Color)
	}
	if layers[0].Direction != "ltr" {
		t.Errorf("expected ltr direction, got %q", layers[0].Direction)
	}
}

// TestExtractLayerDirection tests that a right-to-left line is flagged
// on its layer
func TestExtractLayerDirection(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		{W: 612, H: 792, Runs: []source.TextRun{
			textRun("שלום", 12, 110, 700, 33),
			textRun("עולם", 12, 72, 700, 30),
		}},
	}}
	session := NewSession(doc)
	defer session.Close()

	pages, _, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	layers := pages[0].Layers
	if len(layers) != 1 {
		t.Fatalf("expected 1 text layer, got %d", len(layers))
	}
	if layers[0].Direction != "rtl" {
		t.Errorf("expected rtl direction, got %q", layers[0].Direction)
	}
}

// TestExtractPlaceholderOnFallbackFailure tests that a page whose raster
// cannot be produced still carries one locked background layer
func TestExtractPlaceholderOnFallbackFailure(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		{W: 0, H: 0}, // degenerate geometry defeats the fallback renderer
	}}
	session := NewSession(doc)
	defer session.Close()

	pages, warns, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	layers := pages[0].Layers
	if len(layers) != 1 {
		t.Fatalf("expected exactly 1 placeholder layer, got %d", len(layers))
	}
	layer := layers[0]
	if layer.ID != "page-raster-0" {
		t.Errorf("expected id page-raster-0, got %s", layer.ID)
	}
	if layer.Role != model.RoleBackground || !layer.Locked || !layer.Visible {
		t.Errorf("expected locked visible background layer, got %+v", layer)
	}
	if layer.ImageAsset != "" {
		t.Errorf("expected no raster asset, got %q", layer.ImageAsset)
	}
	// Degenerate geometry falls back to the default page size.
	if layer.Bounds != (model.Bounds{X: 0, Y: 0, Width: 612, Height: 792}) {
		t.Errorf("expected full default-page bounds, got %+v", layer.Bounds)
	}

	found := false
	for _, w := range warns {
		if w.Kind == WarnPageFallback && w.Page == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a page-fallback warning, got %v", warns)
	}
}

// TestExtractFallbackReplacesImages tests that a text-free page with
// images still collapses to the single background raster
func TestExtractFallbackReplacesImages(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		{W: 612, H: 792, Ops: imageOps(10, 10, [6]float64{612, 0, 0, 792, 0, 0})},
	}}
	session := NewSession(doc)
	defer session.Close()

	pages, _, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	layers := pages[0].Layers
	if len(layers) != 1 {
		t.Fatalf("expected images replaced by 1 fallback layer, got %d", len(layers))
	}
	if layers[0].Role != model.RoleBackground {
		t.Errorf("expected background role, got %s", layers[0].Role)
	}
}

// TestExtractProgress tests that the callback fires once per page
func TestExtractProgress(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		textPage(), textPage(), textPage(),
	}}
	session := NewSession(doc)
	defer session.Close()

	var calls []int
	_, _, err := session.Extract(context.Background(), func(current, total int, status string) {
		calls = append(calls, current)
		if total != 3 {
			t.Errorf("expected total 3, got %d", total)
		}
		if status == "" {
			t.Error("expected a status message")
		}
	})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(calls) != 3 || calls[0] != 1 || calls[2] != 3 {
		t.Errorf("expected calls 1..3, got %v", calls)
	}
}

// TestExtractCancellation tests that cancellation lands between pages
func TestExtractCancellation(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		textPage(), textPage(), textPage(),
	}}
	session := NewSession(doc)
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	pages, _, err := session.Extract(ctx, func(current, total int, status string) {
		if current == 1 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// The page processed before cancellation is returned with the error.
	if len(pages) != 1 {
		t.Errorf("expected 1 page with the error, got %d", len(pages))
	}
}

// TestExtractRetryAfterCancellation tests that an interrupted run is not
// served from cache: a later call with a live context processes the whole
// document
func TestExtractRetryAfterCancellation(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		textPage(), textPage(), textPage(),
	}}
	session := NewSession(doc)
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	_, _, err := session.Extract(ctx, func(current, total int, status string) {
		if current == 1 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	pages, warns, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected all 3 pages on retry, got %d", len(pages))
	}
	if len(warns) != 0 {
		t.Errorf("expected no carried-over warnings, got %v", warns)
	}

	// Analyze after the interrupted run sees the full document.
	analysis, err := session.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if analysis.TotalPages != 3 {
		t.Errorf("expected analysis over 3 pages, got %d", analysis.TotalPages)
	}
}

// TestAnalyzeCancelled tests that a cancelled extraction never produces
// a truncated classification
func TestAnalyzeCancelled(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{
		textPage(), textPage(),
	}}
	session := NewSession(doc)
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := session.Analyze(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Analyze, got %v", err)
	}
}

// TestExtractDegradedPage tests that an unavailable page warns and
// commits an empty page instead of failing the run
func TestExtractDegradedPage(t *testing.T) {
	session := NewSession(&failingDocument{pages: 2, failAt: 0})
	defer session.Close()

	pages, warns, err := session.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0].Layers) != 0 {
		t.Errorf("expected empty degraded page, got %d layers", len(pages[0].Layers))
	}
	if pages[0].Width != 612 || pages[0].Height != 792 {
		t.Errorf("expected default page size, got %+v", pages[0])
	}

	found := false
	for _, w := range warns {
		if w.Kind == WarnPageUnavailable && w.Page == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected page-unavailable warning, got %v", warns)
	}
	// The healthy page still extracted normally.
	if len(pages[1].Layers) == 0 {
		t.Error("expected second page to extract")
	}
}

type failingDocument struct {
	pages  int
	failAt int
}

func (d *failingDocument) PageCount() int { return d.pages }

func (d *failingDocument) Page(index int) (source.Page, error) {
	if index == d.failAt {
		return nil, errors.New("corrupt page object")
	}
	return textPage(), nil
}

func (d *failingDocument) Close() error { return nil }

// TestAnalyze tests classification driven by extraction stats
func TestAnalyze(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{textPage()}}
	session := NewSession(doc)
	defer session.Close()

	analysis, err := session.Analyze(context.Background())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if analysis.ContentType != model.ContentTextBased {
		t.Errorf("expected text-based, got %s", analysis.ContentType)
	}
	if analysis.TotalPages != 1 {
		t.Errorf("expected 1 page, got %d", analysis.TotalPages)
	}
	wantChars := len("Quarterly Report") + len("Revenue grew in the third quarter") + len("across all regions.")
	if analysis.TotalCharCount != wantChars {
		t.Errorf("expected %d chars, got %d", wantChars, analysis.TotalCharCount)
	}

	// A second call returns the cached result.
	again, err := session.Analyze(context.Background())
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}
	if again.ContentType != analysis.ContentType {
		t.Error("expected cached analysis to match")
	}
}

// TestHierarchy tests the opt-in paragraph tree
func TestHierarchy(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{textPage()}}
	opts := DefaultOptions()
	opts.BuildHierarchy = true
	session := NewSessionWithOptions(doc, opts)
	defer session.Close()

	if _, _, err := session.Extract(context.Background(), nil); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	nodes := session.Hierarchy(0)
	if len(nodes) == 0 {
		t.Fatal("expected paragraph nodes")
	}
	// The default session never builds hierarchies.
	plain := NewSession(&source.StaticDocument{Pages: []*source.StaticPage{textPage()}})
	defer plain.Close()
	if _, _, err := plain.Extract(context.Background(), nil); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if plain.Hierarchy(0) != nil {
		t.Error("expected no hierarchy without the option")
	}
}

// TestSessionClose tests closed-session behavior
func TestSessionClose(t *testing.T) {
	session := NewSession(&source.StaticDocument{Pages: []*source.StaticPage{textPage()}})

	if err := session.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	if _, _, err := session.Extract(context.Background(), nil); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
	if _, err := session.Analyze(context.Background()); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed from Analyze, got %v", err)
	}
}

// TestReconstruct tests the one-shot convenience entry point
func TestReconstruct(t *testing.T) {
	doc := &source.StaticDocument{Pages: []*source.StaticPage{textPage()}}

	pages, warns, err := Reconstruct(context.Background(), doc)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	if len(pages) != 1 || len(pages[0].Layers) != 3 {
		t.Errorf("unexpected result: %d pages", len(pages))
	}
}

// TestExtractDocuments tests the concurrent multi-document entry point
func TestExtractDocuments(t *testing.T) {
	docs := []source.Document{
		&source.StaticDocument{Pages: []*source.StaticPage{textPage()}},
		&source.StaticDocument{Pages: []*source.StaticPage{{W: 612, H: 792}}},
		&source.StaticDocument{Pages: []*source.StaticPage{textPage(), textPage()}},
	}

	results, err := ExtractDocuments(context.Background(), docs, 2)
	if err != nil {
		t.Fatalf("ExtractDocuments failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if len(results[0].Pages) != 1 {
		t.Errorf("doc 0: expected 1 page, got %d", len(results[0].Pages))
	}
	if results[1].Pages[0].Layers[0].Role != model.RoleBackground {
		t.Error("doc 1: expected the empty page's fallback layer")
	}
	if len(results[2].Pages) != 2 {
		t.Errorf("doc 2: expected 2 pages, got %d", len(results[2].Pages))
	}
	if results[0].Analysis.ContentType != model.ContentTextBased {
		t.Errorf("doc 0: expected text-based, got %s", results[0].Analysis.ContentType)
	}
}

// TestWarningFormat tests the warning string rendering
func TestWarningFormat(t *testing.T) {
	w := Warning{Kind: WarnImageSkipped, Page: 4, Message: "bad pixel data"}
	s := w.String()
	if !strings.Contains(s, "page 4") || !strings.Contains(s, "bad pixel data") {
		t.Errorf("unexpected warning format: %s", s)
	}

	joined := FormatWarnings([]Warning{w, {Kind: WarnPageFallback, Page: 1, Message: "no text"}})
	if !strings.Contains(joined, ";") {
		t.Errorf("expected joined warnings, got %s", joined)
	}
}
