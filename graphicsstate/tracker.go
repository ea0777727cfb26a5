package graphicsstate

import (
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

// ImagePlacement records one painted image together with the CTM that was
// in effect when it was painted.
type ImagePlacement struct {
	Image *source.ImageData
	CTM   model.Matrix

	// Index is the paint order of the image on its page, starting at 0.
	Index int
}

// WalkResult is everything the tracker learned from one operator stream.
type WalkResult struct {
	// Images are the painted images in paint order, each with its CTM.
	Images []ImagePlacement

	// PathSegments counts path construction operators.
	PathSegments int

	// PathPaints counts painted paths; this is the page's path object
	// count for classification purposes.
	PathPaints int
}

// Walk replays an operator stream through a graphics state stack and
// resolves the effective CTM at every paint-image operator. It is a pure
// function of the stream: malformed operators are ignored, an unbalanced
// restore resets to identity, and no error is ever returned.
func Walk(ops []source.Operator) WalkResult {
	state := NewState()
	var result WalkResult

	for _, op := range ops {
		switch op.Op {
		case source.OpSave:
			state.Save()
		case source.OpRestore:
			state.Restore()
		case source.OpConcat:
			if len(op.Args) >= 6 {
				state.Concat(model.NewMatrix(
					op.Args[0], op.Args[1], op.Args[2],
					op.Args[3], op.Args[4], op.Args[5]))
			}
		case source.OpPaintImage:
			if op.Image != nil {
				result.Images = append(result.Images, ImagePlacement{
					Image: op.Image,
					CTM:   state.CTM,
					Index: len(result.Images),
				})
			}
		case source.OpPathSegment:
			result.PathSegments++
		case source.OpPathPaint:
			result.PathPaints++
		case source.OpSetGray:
			if len(op.Args) >= 1 {
				state.SetGray(op.Args[0])
			}
		case source.OpSetRGB:
			if len(op.Args) >= 3 {
				state.SetRGB(op.Args[0], op.Args[1], op.Args[2])
			}
		case source.OpSetCMYK:
			if len(op.Args) >= 4 {
				state.SetCMYK(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
			}
		}
	}

	return result
}
