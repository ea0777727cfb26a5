package layout

import (
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/text"
)

// Word is a contiguous run of items within a line not separated by an
// inferred space.
type Word struct {
	Items []text.EnhancedItem
	Text  string
	MinX  float64
	EndX  float64
}

// Character is one glyph of a word with its estimated horizontal extent.
type Character struct {
	Rune     rune
	X        float64
	Width    float64
	FontSize float64
}

// WordNode, LineNode and ParagraphNode form the optional full hierarchy
// (Paragraph → Line → Word → Character) for hosts that edit below the
// line level.
type WordNode struct {
	Word       Word
	Characters []Character
}

type LineNode struct {
	Line   Line
	Bounds model.Bounds
	Words  []WordNode
}

type ParagraphNode struct {
	Paragraph Paragraph
	Bounds    model.Bounds
	Lines     []LineNode
}

// Words splits a line into words using the same boundary predicate as
// space insertion: wherever a space would be inserted, a new word starts
// instead.
func (s *Segmenter) Words(line Line) []Word {
	if len(line.Items) == 0 {
		return nil
	}

	var words []Word
	start := 0
	for i := 1; i < len(line.Items); i++ {
		if s.NeedsSpace(line.Items[i-1], line.Items[i]) {
			words = append(words, s.makeWord(line.Items[start:i]))
			start = i
		}
	}
	words = append(words, s.makeWord(line.Items[start:]))
	return words
}

func (s *Segmenter) makeWord(items []text.EnhancedItem) Word {
	w := Word{
		Items: items,
		MinX:  items[0].OriginX,
		EndX:  items[len(items)-1].EndX,
	}
	for _, it := range items {
		w.Text += it.Text()
	}
	return w
}

// Hierarchy builds the full paragraph tree for a page. Character positions
// are estimated by advancing CharWidthRatio of the font size per rune;
// exact glyph metrics belong to the engine, not this model.
func (s *Segmenter) Hierarchy(paragraphs []Paragraph, pageHeight float64) []ParagraphNode {
	nodes := make([]ParagraphNode, 0, len(paragraphs))
	for _, p := range paragraphs {
		node := ParagraphNode{Paragraph: p}
		for _, line := range p.Lines {
			ln := LineNode{
				Line:   line,
				Bounds: s.LineBounds(line, pageHeight),
			}
			for _, word := range s.Words(line) {
				ln.Words = append(ln.Words, WordNode{
					Word:       word,
					Characters: s.characters(word),
				})
			}
			node.Lines = append(node.Lines, ln)
		}
		node.Bounds = unionBounds(node.Lines)
		nodes = append(nodes, node)
	}
	return nodes
}

func (s *Segmenter) characters(word Word) []Character {
	var chars []Character
	for _, item := range word.Items {
		x := item.OriginX
		advance := item.FontSize * s.config.CharWidthRatio
		for _, r := range item.Text() {
			chars = append(chars, Character{
				Rune:     r,
				X:        x,
				Width:    advance,
				FontSize: item.FontSize,
			})
			x += advance
		}
	}
	return chars
}

// unionBounds merges line bounds into one paragraph rectangle.
func unionBounds(lines []LineNode) model.Bounds {
	if len(lines) == 0 {
		return model.Bounds{}
	}
	b := lines[0].Bounds
	for _, ln := range lines[1:] {
		right := b.X + b.Width
		bottom := b.Y + b.Height
		if ln.Bounds.X < b.X {
			b.X = ln.Bounds.X
		}
		if ln.Bounds.Y < b.Y {
			b.Y = ln.Bounds.Y
		}
		if r := ln.Bounds.X + ln.Bounds.Width; r > right {
			right = r
		}
		if bt := ln.Bounds.Y + ln.Bounds.Height; bt > bottom {
			bottom = bt
		}
		b.Width = right - b.X
		b.Height = bottom - b.Y
	}
	return b
}
