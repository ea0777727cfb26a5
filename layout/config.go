package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the segmentation heuristics' tunable thresholds. The
// defaults reproduce ordinary single-column body text well; none of them
// is provably correct, so hosts that disagree with the output on a corpus
// should tune here rather than patch the detectors.
type Config struct {
	// LineTolerancePoints is the minimum Y-band tolerance, in points, for
	// grouping items into one line.
	LineTolerancePoints float64 `yaml:"line_tolerance_points"`

	// LineToleranceRatio scales the Y-band tolerance with font size;
	// larger glyphs need looser grouping.
	LineToleranceRatio float64 `yaml:"line_tolerance_ratio"`

	// SpaceGapMultiplier is the fraction of the average estimated space
	// width an inter-item gap must exceed to count as a word boundary.
	// Kept well below 1 so kerning-induced negative gaps don't swallow
	// true spaces.
	SpaceGapMultiplier float64 `yaml:"space_gap_multiplier"`

	// LargeGapMultiplier catches wide intentional gaps (table-of-contents
	// leaders and the like) as explicit spaces.
	LargeGapMultiplier float64 `yaml:"large_gap_multiplier"`

	// ColumnGapMultiplier is the space-width multiple at which a line is
	// split into separate columns.
	ColumnGapMultiplier float64 `yaml:"column_gap_multiplier"`

	// ParagraphGapRatio starts a new paragraph when the vertical gap
	// between lines exceeds this multiple of the average line height.
	ParagraphGapRatio float64 `yaml:"paragraph_gap_ratio"`

	// IndentRatio starts a new paragraph when the left edge shifts by more
	// than this multiple of the average line height.
	IndentRatio float64 `yaml:"indent_ratio"`

	// ShortLineRatio marks the previous line as paragraph-ending when its
	// width is below this fraction of the current line's width.
	ShortLineRatio float64 `yaml:"short_line_ratio"`

	// MarginTolerancePoints is how close, in points, the current line must
	// start to the previous line's left edge for the short-line rule to
	// apply.
	MarginTolerancePoints float64 `yaml:"margin_tolerance_points"`

	// CharWidthRatio estimates text width from character count when
	// declared widths are unreliable.
	CharWidthRatio float64 `yaml:"char_width_ratio"`

	// AscentRatio approximates the baseline-to-glyph-top distance as a
	// fraction of font size.
	AscentRatio float64 `yaml:"ascent_ratio"`

	// LineHeightRatio is the emitted line layer height as a fraction of
	// the dominant font size.
	LineHeightRatio float64 `yaml:"line_height_ratio"`
}

// DefaultConfig returns the default segmentation thresholds.
func DefaultConfig() Config {
	return Config{
		LineTolerancePoints:   3.0,
		LineToleranceRatio:    0.3,
		SpaceGapMultiplier:    0.3,
		LargeGapMultiplier:    3.0,
		ColumnGapMultiplier:   4.0,
		ParagraphGapRatio:     1.5,
		IndentRatio:           2.0,
		ShortLineRatio:        0.6,
		MarginTolerancePoints: 10.0,
		CharWidthRatio:        0.55,
		AscentRatio:           0.8,
		LineHeightRatio:       1.2,
	}
}

// LoadConfig reads threshold overrides from a YAML file, applied on top of
// the defaults. Fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read layout config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse layout config: %w", err)
	}

	return config, nil
}
