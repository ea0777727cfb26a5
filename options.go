package strata

import (
	"github.com/tsawler/strata/fonts"
	"github.com/tsawler/strata/imaging"
	"github.com/tsawler/strata/layout"
)

// Options configures an extraction session.
type Options struct {
	// Layout holds the segmentation thresholds.
	Layout layout.Config

	// FontResolver is the external font-resolution collaborator. Nil is
	// allowed; every lookup then takes the keyword fallback table.
	FontResolver fonts.Resolver

	// Sink receives extracted and fallback rasters. Nil gets a fresh
	// in-memory sink owned (and cleared) by the session.
	Sink imaging.Sink

	// BuildHierarchy additionally builds the Paragraph → Line → Word →
	// Character tree for each page, retrievable via Session.Hierarchy.
	BuildHierarchy bool

	// DPI is recorded on emitted pages. Page geometry is always in points.
	DPI float64
}

// DefaultOptions returns the default session configuration.
func DefaultOptions() Options {
	return Options{
		Layout: layout.DefaultConfig(),
		DPI:    72,
	}
}
