package model

// ContentType is the document-level classification derived from aggregate
// page statistics.
type ContentType string

const (
	// ContentImageOnly indicates a scanned document: images with no
	// extractable text.
	ContentImageOnly ContentType = "image-only"
	// ContentTextBased indicates a native text PDF, primarily text with
	// optional images.
	ContentTextBased ContentType = "text-based"
	// ContentMixed indicates significant text and images together.
	ContentMixed ContentType = "mixed"
	// ContentVectorHeavy indicates diagram/chart-dominated pages.
	ContentVectorHeavy ContentType = "vector-heavy"
	// ContentEmpty indicates an empty or unreadable document.
	ContentEmpty ContentType = "empty"
)

// Recommendation is the downstream action suggested by the classifier.
type Recommendation string

const (
	// RecommendNone means text is extractable as-is.
	RecommendNone Recommendation = "none"
	// RecommendOCR means the document needs OCR to recover text.
	RecommendOCR Recommendation = "ocr-required"
	// RecommendOCRVerification means extracted text should be cross-checked
	// against OCR output.
	RecommendOCRVerification Recommendation = "ocr-verification"
	// RecommendVectorConversion means vector artwork could be converted to
	// editable shapes.
	RecommendVectorConversion Recommendation = "vector-conversion"
)

// PageStats holds per-page content statistics gathered during extraction.
// Coverage ratios are clamped to 0..1.
type PageStats struct {
	PageIndex     int     `json:"pageIndex"`
	TextObjects   int     `json:"textObjects"`
	ImageObjects  int     `json:"imageObjects"`
	PathObjects   int     `json:"pathObjects"`
	CharCount     int     `json:"textCharCount"`
	ImageCoverage float64 `json:"imageCoverage"`
	TextCoverage  float64 `json:"textCoverage"`
}

// DocumentAnalysis is the whole-document classification result. It is
// computed once per import and cached until the source document is replaced
// or closed.
type DocumentAnalysis struct {
	ContentType       ContentType    `json:"contentType"`
	Recommendation    Recommendation `json:"recommendation"`
	Confidence        float64        `json:"confidence"`
	TotalPages        int            `json:"totalPages"`
	TotalTextObjects  int            `json:"totalTextObjects"`
	TotalImageObjects int            `json:"totalImageObjects"`
	TotalPathObjects  int            `json:"totalPathObjects"`
	TotalCharCount    int            `json:"totalCharCount"`
	AvgImageCoverage  float64        `json:"avgImageCoverage"`
	AvgTextCoverage   float64        `json:"avgTextCoverage"`
	PageStats         []PageStats    `json:"pageStats"`
}
