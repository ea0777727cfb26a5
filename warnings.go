package strata

import (
	"fmt"
	"strings"
)

// WarningKind categorizes non-fatal problems encountered during
// extraction. Warnings mean the run succeeded but some content was skipped
// or substituted; partial success is always preferred over total failure.
type WarningKind int

const (
	// WarnPageUnavailable means a page handle could not be obtained; the
	// page is emitted empty.
	WarnPageUnavailable WarningKind = iota

	// WarnTextUnavailable means a page's text runs could not be read.
	WarnTextUnavailable

	// WarnOperatorsUnavailable means a page's operator stream could not
	// be read; its images are lost but text may survive.
	WarnOperatorsUnavailable

	// WarnImageSkipped means one image's pixel data could not be
	// normalized or stored.
	WarnImageSkipped

	// WarnPageFallback means a page yielded no text layers and was
	// replaced by a full-page raster layer.
	WarnPageFallback
)

// String returns a short name for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnPageUnavailable:
		return "page-unavailable"
	case WarnTextUnavailable:
		return "text-unavailable"
	case WarnOperatorsUnavailable:
		return "operators-unavailable"
	case WarnImageSkipped:
		return "image-skipped"
	case WarnPageFallback:
		return "page-fallback"
	default:
		return "unknown"
	}
}

// Warning records one non-fatal problem, tied to the page it occurred on.
type Warning struct {
	Kind    WarningKind
	Page    int
	Message string
}

// String formats the warning for logs.
func (w Warning) String() string {
	return fmt.Sprintf("page %d [%s]: %s", w.Page, w.Kind, w.Message)
}

// FormatWarnings joins warnings into a single log-friendly string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
