// Package model defines the shared data types of the strata pipeline:
// affine matrices and page-space geometry, the reconstructed Layer and
// PageData output model, and the content statistics consumed by the
// document classifier.
//
// Two coordinate systems appear throughout. BBox is PDF page space
// (bottom-left origin, Y up) and is only used while grouping raw content.
// Bounds is screen space (top-left origin, Y down); every emitted layer
// carries Bounds, converted with the page height.
package model
