package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/tsawler/strata/graphicsstate"
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

// imageZBase places extracted images far below all text layers. Text in
// PDFs is usually drawn after background art, so absent other signal
// images default to sitting behind the text.
const imageZBase = -1000

// Extractor turns tracked image placements into positioned image layers.
type Extractor struct {
	sink Sink
}

// NewExtractor creates an extractor that stores rasters in the given sink.
func NewExtractor(sink Sink) *Extractor {
	return &Extractor{sink: sink}
}

// ExtractPage converts a page's image placements into layers. A placement
// whose pixel data cannot be normalized or stored is skipped and reported
// in the returned error list; a bad image never aborts the page.
func (e *Extractor) ExtractPage(placements []graphicsstate.ImagePlacement, pageIndex int, pageHeight float64) ([]model.Layer, []error) {
	var layers []model.Layer
	var skipped []error

	for _, placement := range placements {
		layer, err := e.extractOne(placement, pageIndex, pageHeight)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("image %d: %w", placement.Index, err))
			continue
		}
		layers = append(layers, layer)
	}
	return layers, skipped
}

func (e *Extractor) extractOne(placement graphicsstate.ImagePlacement, pageIndex int, pageHeight float64) (model.Layer, error) {
	img := placement.Image
	ctm := placement.CTM

	// The CTM maps the image unit square onto the page; its column vector
	// lengths give the rendered extent even under rotation or skew.
	width := ctm.ScaleX()
	height := ctm.ScaleY()
	if width < 1 || height < 1 {
		width = float64(img.Width)
		height = float64(img.Height)
	}

	// The unit square is anchored bottom-left in Y-up space; converting to
	// top-left Y-down puts the layer at pageHeight - f - height.
	x := math.Max(0, ctm[4])
	y := math.Max(0, pageHeight-ctm[5]-height)

	rgba, err := NormalizeRGBA(img)
	if err != nil {
		return model.Layer{}, err
	}

	id := fmt.Sprintf("image-%d-%d", pageIndex, placement.Index)
	asset, err := e.sink.Store(id, rgba)
	if err != nil {
		return model.Layer{}, err
	}

	return model.Layer{
		ID:         id,
		Type:       model.LayerTypeImage,
		Bounds:     model.Bounds{X: x, Y: y, Width: width, Height: height},
		ZIndex:     imageZBase + placement.Index,
		Visible:    true,
		Opacity:    1.0,
		Role:       model.RoleContent,
		ImageAsset: asset,
	}, nil
}

// NormalizeRGBA expands a decoded image's pixel data into an RGBA raster.
// Grayscale and RGB layouts get alpha 255; any other data length is
// unrecoverable for that image.
func NormalizeRGBA(img *source.ImageData) (*image.RGBA, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", img.Width, img.Height)
	}

	pixels := img.Width * img.Height
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	switch len(img.Data) {
	case pixels: // 8-bit grayscale
		for i := 0; i < pixels; i++ {
			g := img.Data[i]
			out.Pix[i*4+0] = g
			out.Pix[i*4+1] = g
			out.Pix[i*4+2] = g
			out.Pix[i*4+3] = 255
		}
	case pixels * 3: // RGB
		for i := 0; i < pixels; i++ {
			out.Pix[i*4+0] = img.Data[i*3+0]
			out.Pix[i*4+1] = img.Data[i*3+1]
			out.Pix[i*4+2] = img.Data[i*3+2]
			out.Pix[i*4+3] = 255
		}
	case pixels * 4: // RGBA
		copy(out.Pix, img.Data)
	default:
		return nil, fmt.Errorf("pixel data length %d does not match %dx%d in any supported layout",
			len(img.Data), img.Width, img.Height)
	}
	return out, nil
}
