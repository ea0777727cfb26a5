package text

import (
	"math"
	"strings"

	"github.com/tsawler/strata/source"
)

const (
	// DefaultFontSize is used when a run's transform carries no usable
	// vertical or horizontal scale.
	DefaultFontSize = 12.0

	// CharWidthRatio estimates a glyph's advance as a fraction of the font
	// size when the engine declared no run width.
	CharWidthRatio = 0.55

	// SpaceWidthRatio estimates the width of a space character as a
	// fraction of the font size.
	SpaceWidthRatio = 0.25

	// endXBuffer widens a run's computed end by 10% so kerning and rounding
	// slack does not read as a gap after the run's last glyph.
	endXBuffer = 1.1

	// degenerateScale is the threshold below which a transform component is
	// treated as absent.
	degenerateScale = 0.001
)

// EnhancedItem is a raw text run augmented with the derived metrics the
// segmenter needs. Items are created once per surviving run and not
// mutated afterwards.
type EnhancedItem struct {
	Run source.TextRun

	OriginX    float64
	OriginY    float64
	EndX       float64
	Width      float64
	FontSize   float64
	SpaceWidth float64
	Direction  Direction
}

// Text returns the run's character content.
func (it EnhancedItem) Text() string {
	return it.Run.Text
}

// Enhance derives metrics for each raw run. Runs whose text is empty or
// whitespace-only carry no visual content and are dropped entirely.
func Enhance(runs []source.TextRun) []EnhancedItem {
	items := make([]EnhancedItem, 0, len(runs))
	for _, run := range runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		items = append(items, enhanceRun(run))
	}
	return items
}

func enhanceRun(run source.TextRun) EnhancedItem {
	size := fontSizeOf(run.Transform)

	width := run.Width
	if width <= 0 {
		width = float64(len([]rune(run.Text))) * size * CharWidthRatio
	}

	return EnhancedItem{
		Run:        run,
		OriginX:    run.Transform[4],
		OriginY:    run.Transform[5],
		EndX:       run.Transform[4] + width*endXBuffer,
		Width:      width,
		FontSize:   size,
		SpaceWidth: size * SpaceWidthRatio,
		Direction:  DetectDirection(run.Text),
	}
}

// fontSizeOf extracts the point size from a run's transform: the vertical
// scale |d|, falling back to the horizontal scale |a| for rotated or
// degenerate matrices, and finally to DefaultFontSize.
func fontSizeOf(m [6]float64) float64 {
	if d := math.Abs(m[3]); d > degenerateScale {
		return d
	}
	if a := math.Abs(m[0]); a > degenerateScale {
		return a
	}
	return DefaultFontSize
}
