// Package graphicsstate tracks the PDF graphics state while walking a
// page's operator stream.
//
// The central job is CTM resolution: maintaining the current transformation
// matrix through save/restore/concat operators so that each painted image
// can be placed with the transform that was actually in effect. Walk is a
// pure function over the stream; it never fails. Unbalanced restores reset
// the CTM to identity rather than erroring, because real-world content
// streams are frequently malformed and a page must never be lost to one.
//
// The state also normalizes fill colors from the gray, RGB and CMYK color
// operators into RGBA so downstream consumers see a single color space.
package graphicsstate
