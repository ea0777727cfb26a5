// Package layout segments enhanced text items into lines, columns and
// paragraphs, and optionally into a full Paragraph → Line → Word →
// Character hierarchy.
//
// # Segmentation
//
// The [Segmenter] performs three passes over a page's items:
//
//	seg := layout.NewSegmenter()
//	lines := seg.SplitAllColumns(seg.Lines(items))
//	paragraphs := seg.Paragraphs(lines)
//
// Line grouping is a Y-band sweep with a tolerance that adapts to font
// size. Word and column boundaries share one gap computation against the
// items' estimated space widths, differing only in the multiplier.
// Paragraph boundaries combine vertical gap, indentation shift, and a
// short-previous-line rule.
//
// # Configuration
//
// All thresholds live in [Config], obtained from [DefaultConfig] or loaded
// from YAML with [LoadConfig]. The heuristics are inherently fuzzy;
// disagreements with ground truth on unusual layouts are expected noise
// and should be addressed by tuning, not by treating the defaults as
// contracts.
package layout
