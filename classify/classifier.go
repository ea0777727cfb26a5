// Package classify derives a whole-document content classification from
// aggregated page statistics and recommends a downstream action (none,
// OCR, OCR verification, or vector conversion).
package classify

import "github.com/tsawler/strata/model"

// Analyze sums per-page statistics and classifies the document. The
// classification rules are evaluated in a fixed priority order; the
// categories are not mutually exclusive by construction, so the first
// matching rule wins.
func Analyze(stats []model.PageStats) model.DocumentAnalysis {
	analysis := model.DocumentAnalysis{
		TotalPages: len(stats),
		PageStats:  stats,
	}

	if len(stats) == 0 {
		analysis.ContentType = model.ContentEmpty
		analysis.Recommendation = model.RecommendNone
		analysis.Confidence = 1.0
		return analysis
	}

	var imageCoverage, textCoverage float64
	for _, ps := range stats {
		analysis.TotalTextObjects += ps.TextObjects
		analysis.TotalImageObjects += ps.ImageObjects
		analysis.TotalPathObjects += ps.PathObjects
		analysis.TotalCharCount += ps.CharCount
		imageCoverage += ps.ImageCoverage
		textCoverage += ps.TextCoverage
	}
	analysis.AvgImageCoverage = imageCoverage / float64(len(stats))
	analysis.AvgTextCoverage = textCoverage / float64(len(stats))

	analysis.ContentType, analysis.Confidence = classify(
		analysis.TotalTextObjects,
		analysis.TotalImageObjects,
		analysis.TotalPathObjects,
		analysis.TotalCharCount,
		analysis.AvgImageCoverage,
	)
	analysis.Recommendation = recommend(analysis.ContentType, analysis.AvgImageCoverage)
	return analysis
}

func classify(textObjects, imageObjects, pathObjects, charCount int, avgImageCoverage float64) (model.ContentType, float64) {
	// Image-only: high image coverage, minimal text.
	if avgImageCoverage > 0.7 && charCount < 50 && textObjects < 5 {
		return model.ContentImageOnly, 0.95
	}

	// Text-based: significant text, low image coverage.
	if charCount > 100 && avgImageCoverage < 0.2 && textObjects > imageObjects*2 {
		return model.ContentTextBased, 0.9
	}

	// Vector-heavy: path objects dominate.
	if pathObjects > (textObjects+imageObjects)*2 && pathObjects > 50 {
		return model.ContentVectorHeavy, 0.85
	}

	// Mixed: significant text and images together.
	if charCount > 50 && imageObjects > 0 && avgImageCoverage > 0.1 {
		return model.ContentMixed, 0.8
	}

	// Any text at all still reads as text-based, just less confidently.
	if charCount > 0 || textObjects > 0 {
		return model.ContentTextBased, 0.7
	}

	return model.ContentEmpty, 1.0
}

func recommend(contentType model.ContentType, avgImageCoverage float64) model.Recommendation {
	switch contentType {
	case model.ContentImageOnly:
		return model.RecommendOCR
	case model.ContentMixed:
		if avgImageCoverage > 0.5 {
			return model.RecommendOCRVerification
		}
		return model.RecommendNone
	case model.ContentVectorHeavy:
		return model.RecommendVectorConversion
	default:
		return model.RecommendNone
	}
}
