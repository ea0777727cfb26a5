package layout

// SplitColumns splits a line at unusually large horizontal gaps. A pure
// Y-band groups side-by-side columns into one run of text; a gap wider
// than ColumnGapMultiplier space widths separates them again. The word
// boundary detection is the same gap computation with a much smaller
// multiplier.
func (s *Segmenter) SplitColumns(line Line) []Line {
	if len(line.Items) < 2 {
		return []Line{line}
	}

	var parts []Line
	start := 0
	for i := 1; i < len(line.Items); i++ {
		a, b := line.Items[i-1], line.Items[i]
		gap := b.OriginX - a.EndX
		avgSpace := (a.SpaceWidth + b.SpaceWidth) / 2
		if gap > avgSpace*s.config.ColumnGapMultiplier {
			parts = append(parts, s.finishLine(line.Items[start:i], line.Y))
			start = i
		}
	}
	if start == 0 {
		return []Line{line}
	}
	parts = append(parts, s.finishLine(line.Items[start:], line.Y))

	for i := range parts {
		parts[i].Index = line.Index
	}
	return parts
}

// SplitAllColumns applies SplitColumns across a page's lines, preserving
// top-to-bottom order and renumbering line indexes.
func (s *Segmenter) SplitAllColumns(lines []Line) []Line {
	var out []Line
	for _, line := range lines {
		out = append(out, s.SplitColumns(line)...)
	}
	for i := range out {
		out[i].Index = i
	}
	return out
}
