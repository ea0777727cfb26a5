package layout

import (
	"math"
	"strings"
)

// Paragraph is an ordered group of consecutive lines.
type Paragraph struct {
	// Lines are the member lines in reading order (top to bottom).
	Lines []Line

	// Text is the member lines' text joined with newlines.
	Text string

	// Index is the paragraph's position on the page (0-based).
	Index int
}

// Paragraphs groups top-to-bottom sorted lines into paragraphs. A new
// paragraph starts when any of three heuristics fires:
//
//   - the vertical gap to the previous line exceeds ParagraphGapRatio
//     times the average line height;
//   - the left edge shifts by more than IndentRatio times the average
//     line height;
//   - the previous line is short (under ShortLineRatio of the current
//     line's width) and the current line restarts at the previous line's
//     margin, which usually means the previous line ended its paragraph.
//
// The short-line rule is known to mis-trigger on justified text and forced
// line breaks; that is accepted noise, not a defect.
func (s *Segmenter) Paragraphs(lines []Line) []Paragraph {
	if len(lines) == 0 {
		return nil
	}

	avgHeight := s.averageLineHeight(lines)

	var paragraphs []Paragraph
	current := []Line{lines[0]}

	for i := 1; i < len(lines); i++ {
		prev, curr := lines[i-1], lines[i]
		if s.isParagraphBoundary(prev, curr, avgHeight) {
			paragraphs = append(paragraphs, s.finishParagraph(current))
			current = nil
		}
		current = append(current, curr)
	}
	paragraphs = append(paragraphs, s.finishParagraph(current))

	for i := range paragraphs {
		paragraphs[i].Index = i
	}
	return paragraphs
}

func (s *Segmenter) isParagraphBoundary(prev, curr Line, avgHeight float64) bool {
	// Lines are sorted by descending PDF Y, so the gap is prev minus curr.
	gap := prev.Y - curr.Y
	if gap > avgHeight*s.config.ParagraphGapRatio {
		return true
	}

	if math.Abs(curr.MinX-prev.MinX) > avgHeight*s.config.IndentRatio {
		return true
	}

	shortPrev := prev.Width() < curr.Width()*s.config.ShortLineRatio
	atMargin := math.Abs(curr.MinX-prev.MinX) <= s.config.MarginTolerancePoints
	return shortPrev && atMargin
}

func (s *Segmenter) averageLineHeight(lines []Line) float64 {
	sum := 0.0
	for _, line := range lines {
		sum += line.MaxFontSize * s.config.LineHeightRatio
	}
	return sum / float64(len(lines))
}

func (s *Segmenter) finishParagraph(lines []Line) Paragraph {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return Paragraph{
		Lines: lines,
		Text:  strings.Join(texts, "\n"),
	}
}
