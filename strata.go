// Package strata reconstructs the pages of a PDF-like document into an
// editable layer model. Each page becomes a stack of text and image
// layers: text runs are enhanced with inferred metrics, grouped into
// lines, columns, and paragraphs, images are normalized and placed from
// their transformation matrices, and the result is merged into a single
// z-ordered list per page. A document-level classifier reports whether
// the content is text-based, image-only, mixed, or vector-heavy, and
// recommends OCR where text is missing.
//
// The high-level entry points are Reconstruct for one-shot use and
// Session for callers that also want analysis, hierarchies, or progress
// reporting:
//
//	doc, err := lpdf.Open("report.pdf")
//	if err != nil { ... }
//	session := strata.NewSession(doc)
//	defer session.Close()
//	pages, warns, err := session.Extract(ctx, nil)
package strata

import (
	"context"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

// Reconstruct extracts every page of doc into layer form using default
// options. The document is closed before returning. Warnings report
// pages or objects that degraded rather than failed.
func Reconstruct(ctx context.Context, doc source.Document) ([]model.PageData, []Warning, error) {
	session := NewSession(doc)
	defer session.Close()
	return session.Extract(ctx, nil)
}

// ReconstructWithOptions is Reconstruct with custom options.
func ReconstructWithOptions(ctx context.Context, doc source.Document, opts Options) ([]model.PageData, []Warning, error) {
	session := NewSessionWithOptions(doc, opts)
	defer session.Close()
	return session.Extract(ctx, nil)
}
