package layout

import (
	"testing"

	"github.com/tsawler/strata/text"
)

// pageLines builds separated lines from (y, x, width) fixtures at 10pt.
// With uniform 10pt text the average line height is 12, so the paragraph
// gap threshold is 18 and the indent threshold is 24.
func pageLines(t *testing.T, fixtures []struct {
	text  string
	x     float64
	y     float64
	width float64
}) []Line {
	t.Helper()
	seg := NewSegmenter()
	items := make([]text.EnhancedItem, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, item(t, f.text, 10, f.x, f.y, f.width))
	}
	return seg.Lines(items)
}

// TestParagraphsVerticalGap tests the large-gap boundary rule
func TestParagraphsVerticalGap(t *testing.T) {
	seg := NewSegmenter()
	lines := pageLines(t, []struct {
		text  string
		x     float64
		y     float64
		width float64
	}{
		{"one", 0, 700, 100},
		{"two", 0, 688, 100}, // 12pt gap, ordinary leading
		{"three", 0, 660, 100}, // 28pt gap, paragraph break
		{"four", 0, 648, 100},
	})

	paragraphs := seg.Paragraphs(lines)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0].Text != "one\ntwo" {
		t.Errorf("expected first paragraph %q, got %q", "one\ntwo", paragraphs[0].Text)
	}
	if paragraphs[1].Text != "three\nfour" {
		t.Errorf("expected second paragraph %q, got %q", "three\nfour", paragraphs[1].Text)
	}
	if paragraphs[0].Index != 0 || paragraphs[1].Index != 1 {
		t.Errorf("expected sequential indexes, got %d and %d", paragraphs[0].Index, paragraphs[1].Index)
	}
}

// TestParagraphsIndentShift tests the left-edge shift boundary rule
func TestParagraphsIndentShift(t *testing.T) {
	seg := NewSegmenter()
	lines := pageLines(t, []struct {
		text  string
		x     float64
		y     float64
		width float64
	}{
		{"one", 0, 700, 100},
		{"two", 30, 688, 100}, // 30pt indent shift exceeds the 24pt threshold
	})

	paragraphs := seg.Paragraphs(lines)

	if len(paragraphs) != 2 {
		t.Fatalf("expected indent shift to split paragraphs, got %d", len(paragraphs))
	}
}

// TestParagraphsShortLine tests the short-previous-line boundary rule
func TestParagraphsShortLine(t *testing.T) {
	seg := NewSegmenter()
	lines := pageLines(t, []struct {
		text  string
		x     float64
		y     float64
		width float64
	}{
		{"end.", 0, 700, 40},  // short: under 60% of the next line's width
		{"fresh", 0, 688, 100}, // restarts at the same margin
	})

	paragraphs := seg.Paragraphs(lines)

	if len(paragraphs) != 2 {
		t.Fatalf("expected short line to end its paragraph, got %d", len(paragraphs))
	}
}

// TestParagraphsContinuous tests that ordinary body text stays together
func TestParagraphsContinuous(t *testing.T) {
	seg := NewSegmenter()
	lines := pageLines(t, []struct {
		text  string
		x     float64
		y     float64
		width float64
	}{
		{"one", 0, 700, 100},
		{"two", 0, 688, 100},
		{"three", 0, 676, 100},
	})

	paragraphs := seg.Paragraphs(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0].Text != "one\ntwo\nthree" {
		t.Errorf("unexpected paragraph text %q", paragraphs[0].Text)
	}
}

// TestParagraphsEmpty tests the empty input case
func TestParagraphsEmpty(t *testing.T) {
	seg := NewSegmenter()
	if got := seg.Paragraphs(nil); got != nil {
		t.Errorf("expected nil for no lines, got %v", got)
	}
}
