// Package text prepares raw engine text runs for layout segmentation.
//
// Enhance filters out runs with no visual content and derives the metrics
// gap-based segmentation depends on: the run origin, its buffered end X,
// the effective font size, and an estimated space width. It also tags each
// item with its dominant Unicode writing direction.
package text
