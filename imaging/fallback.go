package imaging

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

// FallbackScale is the raster scale used for full-page fallback layers.
// 2x keeps the background sharp when the host zooms in.
const FallbackScale = 2.0

// FallbackLayer renders an entire page as a single locked background image
// layer. It is the recovery path for pages that yield no text layers
// (scanned pages, inline-image-only pages, unsupported form XObjects) and
// guarantees every imported page produces at least one visible layer.
//
// If the engine cannot rasterize, a blank white raster stands in so the
// guarantee still holds.
func (e *Extractor) FallbackLayer(page source.Page, pageIndex int) (model.Layer, error) {
	pageWidth, pageHeight := page.Size()
	targetW := int(pageWidth * FallbackScale)
	targetH := int(pageHeight * FallbackScale)
	if targetW < 1 || targetH < 1 {
		return model.Layer{}, fmt.Errorf("page %d has degenerate size %.1fx%.1f", pageIndex, pageWidth, pageHeight)
	}

	raster := image.Image(blankRaster(targetW, targetH))
	if rendered, err := page.Render(FallbackScale); err == nil && rendered != nil {
		raster = scaleTo(rendered, targetW, targetH)
	}

	id := fmt.Sprintf("page-raster-%d", pageIndex)
	asset, err := e.sink.Store(id, raster)
	if err != nil {
		return model.Layer{}, fmt.Errorf("store fallback raster: %w", err)
	}

	return model.Layer{
		ID:         id,
		Type:       model.LayerTypeImage,
		Bounds:     model.Bounds{X: 0, Y: 0, Width: pageWidth, Height: pageHeight},
		ZIndex:     imageZBase,
		Visible:    true,
		Locked:     true,
		Opacity:    1.0,
		Role:       model.RoleBackground,
		ImageAsset: asset,
	}, nil
}

// scaleTo resamples src to the exact target size when the renderer's
// output disagrees with the requested scale.
func scaleTo(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func blankRaster(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
