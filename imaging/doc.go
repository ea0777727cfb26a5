// Package imaging turns tracked image placements into positioned image
// layers and owns the raster sink boundary.
//
// Placement geometry comes from the CTM at each paint operator: the
// rendered extent is the length of the matrix's column vectors, which is
// correct under rotation and skew. Pixel data is normalized from the three
// supported layouts (grayscale, RGB, RGBA) into RGBA before storage; an
// image that fits no layout is skipped, never fatal.
//
// The package also provides the full-page raster fallback used when a page
// yields no text layers, and MemorySink, an LRU-bounded in-memory Sink.
package imaging
