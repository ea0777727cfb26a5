package layout

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/text"
)

// Line is an ordered run of enhanced text items sharing a Y-band, sorted
// left to right, with its assembled text content.
type Line struct {
	// Items are the member items sorted by X.
	Items []text.EnhancedItem

	// Y is the line's anchor baseline: the baseline of the item that
	// opened the line.
	Y float64

	// Text is the assembled content, with spaces inserted at detected
	// word boundaries.
	Text string

	// MinX is the left edge of the line.
	MinX float64

	// SpanRight is the right edge implied by declared item widths,
	// without the end-of-run buffer.
	SpanRight float64

	// MaxFontSize is the dominant font size. The maximum is used rather
	// than the average because larger glyphs dominate visual line height.
	MaxFontSize float64

	// Direction is the line's dominant writing direction: RTL when the
	// line's strong RTL runes outnumber its strong LTR runes.
	Direction text.Direction

	// Index is the line's top-to-bottom position on the page (0-based).
	Index int
}

// Width returns the line's declared span width.
func (l Line) Width() float64 {
	return l.SpanRight - l.MinX
}

// AvgBaseline returns the mean baseline Y of the line's items.
func (l Line) AvgBaseline() float64 {
	if len(l.Items) == 0 {
		return l.Y
	}
	sum := 0.0
	for _, it := range l.Items {
		sum += it.OriginY
	}
	return sum / float64(len(l.Items))
}

// Segmenter groups enhanced text items into lines, columns and paragraphs
// using gap-based heuristics.
type Segmenter struct {
	config Config
}

// NewSegmenter creates a segmenter with default thresholds.
func NewSegmenter() *Segmenter {
	return NewSegmenterWithConfig(DefaultConfig())
}

// NewSegmenterWithConfig creates a segmenter with custom thresholds.
func NewSegmenterWithConfig(config Config) *Segmenter {
	return &Segmenter{config: config}
}

// Config returns the segmenter's thresholds.
func (s *Segmenter) Config() Config {
	return s.config
}

// Lines groups items into lines. Items are processed in visual order, top
// to bottom (descending PDF Y); an item opens a new line when its baseline
// falls outside the adaptive tolerance of the current line's anchor.
// Within each line, items are re-sorted by X before text assembly.
func (s *Segmenter) Lines(items []text.EnhancedItem) []Line {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]text.EnhancedItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OriginY > sorted[j].OriginY
	})

	var lines []Line
	var current []text.EnhancedItem
	currentY := sorted[0].OriginY

	for _, item := range sorted {
		if len(current) > 0 && math.Abs(item.OriginY-currentY) > s.lineTolerance(item.FontSize) {
			lines = append(lines, s.finishLine(current, currentY))
			current = nil
			currentY = item.OriginY
		}
		if len(current) == 0 {
			currentY = item.OriginY
		}
		current = append(current, item)
	}
	if len(current) > 0 {
		lines = append(lines, s.finishLine(current, currentY))
	}

	for i := range lines {
		lines[i].Index = i
	}
	return lines
}

// lineTolerance is the adaptive Y-band: at least LineTolerancePoints,
// growing with font size.
func (s *Segmenter) lineTolerance(fontSize float64) float64 {
	return math.Max(s.config.LineTolerancePoints, fontSize*s.config.LineToleranceRatio)
}

func (s *Segmenter) finishLine(items []text.EnhancedItem, anchorY float64) Line {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OriginX < items[j].OriginX
	})

	line := Line{
		Items:       items,
		Y:           anchorY,
		MinX:        items[0].OriginX,
		SpanRight:   items[0].OriginX + items[0].Width,
		MaxFontSize: items[0].FontSize,
	}
	for _, it := range items[1:] {
		line.MinX = math.Min(line.MinX, it.OriginX)
		line.SpanRight = math.Max(line.SpanRight, it.OriginX+it.Width)
		line.MaxFontSize = math.Max(line.MaxFontSize, it.FontSize)
	}
	line.Direction = lineDirection(items)
	line.Text = s.assembleText(items, line.Direction)
	return line
}

// lineDirection aggregates the items' detected directions: the side with
// more strong items wins, with LTR as the tie-break and the neutral
// default.
func lineDirection(items []text.EnhancedItem) text.Direction {
	ltr, rtl := 0, 0
	for _, it := range items {
		switch it.Direction {
		case text.LTR:
			ltr++
		case text.RTL:
			rtl++
		}
	}
	if rtl > ltr {
		return text.RTL
	}
	return text.LTR
}

// assembleText joins item texts in logical order, inserting a space
// wherever NeedsSpace detects a word boundary. Items arrive sorted by X
// (visual order); for RTL lines logical order runs right to left, so the
// scan is reversed while the gap check stays between visual neighbors.
func (s *Segmenter) assembleText(items []text.EnhancedItem, dir text.Direction) string {
	var b strings.Builder
	if dir == text.RTL {
		for i := len(items) - 1; i >= 0; i-- {
			if i < len(items)-1 && s.NeedsSpace(items[i], items[i+1]) {
				b.WriteByte(' ')
			}
			b.WriteString(items[i].Text())
		}
		return b.String()
	}
	for i, item := range items {
		if i > 0 && s.NeedsSpace(items[i-1], item) {
			b.WriteByte(' ')
		}
		b.WriteString(item.Text())
	}
	return b.String()
}

// NeedsSpace reports whether a space separates two horizontally adjacent
// items. If either string already carries boundary whitespace (any
// whitespace rune, not just an ASCII space: tabs and non-breaking spaces
// count) no space is ever inserted, regardless of the computed gap.
// Otherwise the gap is compared against two thresholds: a large multiple
// that catches wide intentional gaps, and a small one for ordinary word
// breaks. The small threshold stays below one space width so
// kerning-induced negative gaps don't defeat it.
func (s *Segmenter) NeedsSpace(a, b text.EnhancedItem) bool {
	if last, _ := utf8.DecodeLastRuneInString(a.Text()); unicode.IsSpace(last) {
		return false
	}
	if first, _ := utf8.DecodeRuneInString(b.Text()); unicode.IsSpace(first) {
		return false
	}
	gap := b.OriginX - a.EndX
	avgSpace := (a.SpaceWidth + b.SpaceWidth) / 2
	if gap > avgSpace*s.config.LargeGapMultiplier {
		return true
	}
	return gap > avgSpace*s.config.SpaceGapMultiplier
}

// LineBounds computes the screen-space bounds of a line's emitted text
// layer. The width takes the larger of the declared span and a
// character-count estimate: declared widths are sometimes unreliable for
// justified or heavily kerned text, so the estimate acts as a floor.
func (s *Segmenter) LineBounds(line Line, pageHeight float64) model.Bounds {
	ascent := line.MaxFontSize * s.config.AscentRatio
	estimated := float64(len([]rune(line.Text))) * line.MaxFontSize * s.config.CharWidthRatio

	return model.Bounds{
		X:      line.MinX,
		Y:      pageHeight - line.AvgBaseline() - ascent,
		Width:  math.Max(line.Width(), estimated),
		Height: line.MaxFontSize * s.config.LineHeightRatio,
	}
}
