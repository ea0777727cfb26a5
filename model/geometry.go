package model

import "math"

// Point represents a 2D point in page space.
type Point struct {
	X, Y float64
}

// Matrix represents a 2D affine transformation in the PDF convention
// [a b c d e f]. Indexes 0..5 correspond to a, b, c, d, e, f.
type Matrix [6]float64

// Identity returns an identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// NewMatrix creates a matrix from its six coefficients.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{a, b, c, d, e, f}
}

// Concat right-multiplies m onto the receiver, the composition performed by
// the concat operator: the result applies m first, then the receiver.
func (ctm Matrix) Concat(m Matrix) Matrix {
	return Matrix{
		ctm[0]*m[0] + ctm[2]*m[1],
		ctm[1]*m[0] + ctm[3]*m[1],
		ctm[0]*m[2] + ctm[2]*m[3],
		ctm[1]*m[2] + ctm[3]*m[3],
		ctm[0]*m[4] + ctm[2]*m[5] + ctm[4],
		ctm[1]*m[4] + ctm[3]*m[5] + ctm[5],
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// ScaleX returns the effective horizontal scale of the matrix: the length of
// the transformed unit X vector. Correct under rotation and skew, not just
// axis-aligned scaling.
func (m Matrix) ScaleX() float64 {
	return math.Hypot(m[0], m[1])
}

// ScaleY returns the effective vertical scale of the matrix.
func (m Matrix) ScaleY() float64 {
	return math.Hypot(m[2], m[3])
}

// IsIdentity returns true if the matrix is an identity matrix.
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}

// BBox is an axis-aligned rectangle in PDF page space (bottom-left origin,
// Y increasing upward). It is the intermediate geometry used while grouping
// text items; finished layers carry top-left Bounds instead.
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom
	Width  float64
	Height float64
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Area returns the area of the box.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Union returns the smallest box covering both boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.X, other.X)
	y := math.Min(b.Y, other.Y)
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())
	return BBox{X: x, Y: y, Width: right - x, Height: top - y}
}

// Intersects checks whether two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.X ||
		b.X > other.Right() ||
		b.Top() < other.Y ||
		b.Y > other.Top())
}

// ToBounds converts the box to top-left screen space using the page height.
func (b BBox) ToBounds(pageHeight float64) Bounds {
	return Bounds{
		X:      b.X,
		Y:      pageHeight - b.Y - b.Height,
		Width:  b.Width,
		Height: b.Height,
	}
}
