package model

// Bounds is a rectangle in screen space: top-left origin, Y increasing
// downward, measured in page points. Every layer emitted by the pipeline
// has already been flipped out of PDF's bottom-up coordinate system.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayerType identifies the kind of content a layer carries.
type LayerType string

const (
	LayerTypeText  LayerType = "text"
	LayerTypeImage LayerType = "image"
)

// LayerRole distinguishes ordinary content from the full-page background
// raster produced by the no-text fallback path.
type LayerRole string

const (
	RoleContent    LayerRole = "content"
	RoleBackground LayerRole = "background"
)

// Layer is one positioned, typed visual unit in the reconstructed editable
// model. IDs are unique per page and stable within a single extraction run,
// but not across re-extractions: positions may shift when the source is
// re-rendered at a different scale.
type Layer struct {
	ID      string    `json:"id"`
	Type    LayerType `json:"type"`
	Bounds  Bounds    `json:"bounds"`
	ZIndex  int       `json:"zIndex"`
	Visible bool      `json:"visible"`
	Locked  bool      `json:"locked"`
	Opacity float64   `json:"opacity"`
	Role    LayerRole `json:"role"`

	// Text layers only. Color is the fill color as #rrggbb; Direction is
	// "ltr" or "rtl".
	Content    string  `json:"content,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontWeight int     `json:"fontWeight,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Color      string  `json:"color,omitempty"`
	Direction  string  `json:"direction,omitempty"`

	// Image layers only. ImageAsset is the opaque handle returned by the
	// raster sink collaborator.
	ImageAsset string `json:"imageAsset,omitempty"`
}

// PageData is the per-page output of an extraction run: the reconstructed
// layers in final paint order plus page geometry.
type PageData struct {
	PageIndex int     `json:"pageIndex"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	DPI       float64 `json:"dpi"`
	Layers    []Layer `json:"layers"`
}
