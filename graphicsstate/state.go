package graphicsstate

import (
	"fmt"

	"github.com/tsawler/strata/model"
)

// State holds the graphics state tracked while walking an operator stream:
// the current transformation matrix and the normalized fill/stroke colors.
type State struct {
	// CTM is the current transformation matrix.
	CTM model.Matrix

	// FillColor and StrokeColor are normalized RGBA components in 0..1.
	FillColor   [4]float64
	StrokeColor [4]float64

	stack []savedState
}

type savedState struct {
	ctm         model.Matrix
	fillColor   [4]float64
	strokeColor [4]float64
}

// NewState creates a graphics state with an identity CTM and black colors.
func NewState() *State {
	return &State{
		CTM:         model.Identity(),
		FillColor:   [4]float64{0, 0, 0, 1},
		StrokeColor: [4]float64{0, 0, 0, 1},
	}
}

// Save pushes a copy of the current state (q operator).
func (s *State) Save() {
	s.stack = append(s.stack, savedState{
		ctm:         s.CTM,
		fillColor:   s.FillColor,
		strokeColor: s.StrokeColor,
	})
}

// Restore pops the most recently saved state (Q operator). An unbalanced
// restore resets the CTM to identity and continues; malformed streams must
// not abort the page.
func (s *State) Restore() {
	if len(s.stack) == 0 {
		s.CTM = model.Identity()
		return
	}
	saved := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.CTM = saved.ctm
	s.FillColor = saved.fillColor
	s.StrokeColor = saved.strokeColor
}

// Concat composes a matrix onto the CTM (cm operator).
func (s *State) Concat(m model.Matrix) {
	s.CTM = s.CTM.Concat(m)
}

// Depth returns the current save stack depth.
func (s *State) Depth() int {
	return len(s.stack)
}

// SetGray sets the fill color from a single gray component (g operator).
func (s *State) SetGray(g float64) {
	s.FillColor = [4]float64{g, g, g, 1}
}

// SetRGB sets the fill color (rg operator).
func (s *State) SetRGB(r, g, b float64) {
	s.FillColor = [4]float64{r, g, b, 1}
}

// SetCMYK sets the fill color from CMYK components (k operator).
func (s *State) SetCMYK(c, m, y, k float64) {
	r, g, b := CMYKToRGB(c, m, y, k)
	s.FillColor = [4]float64{r, g, b, 1}
}

// CMYKToRGB converts CMYK components in 0..1 to RGB.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	return (1 - c) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}

// HexColor formats normalized RGBA components as a #rrggbb string.
func HexColor(color [4]float64) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(color[0])*255),
		uint8(clamp01(color[1])*255),
		uint8(clamp01(color[2])*255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
