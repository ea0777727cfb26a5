package fonts

import (
	"fmt"
	"strings"
)

// Match is the result of resolving a PDF-internal font name to a usable
// font family.
type Match struct {
	// Family is the best-available font family name.
	Family string

	// Source records where the match came from: "resolver" for the
	// external resolution collaborator, "fallback" for the keyword table.
	Source string

	// Confidence is 0..1; keyword fallbacks score low.
	Confidence float64
}

// Resolver is the external font-resolution collaborator (system fonts,
// web font catalog). Implementations may fail freely; the matcher
// degrades to its fallback table instead of propagating errors.
type Resolver interface {
	Resolve(name string, bold, italic bool) (Match, error)
}

// FallbackConfidence is the score assigned to keyword-table matches.
const FallbackConfidence = 0.3

// Matcher maps PDF font names to font families, caching results for the
// lifetime of a document import. It is used from a single extraction task
// and needs no locking; each session owns its own matcher.
type Matcher struct {
	resolver Resolver
	cache    map[string]Match
}

// NewMatcher creates a matcher delegating to the given resolver. A nil
// resolver is allowed: every miss then takes the fallback table.
func NewMatcher(resolver Resolver) *Matcher {
	return &Matcher{
		resolver: resolver,
		cache:    make(map[string]Match),
	}
}

// Match resolves a font name with style flags. Results are cached by
// (name, bold, italic) until Reset.
func (m *Matcher) Match(name string, bold, italic bool) Match {
	key := fmt.Sprintf("%s-%t-%t", name, bold, italic)
	if cached, ok := m.cache[key]; ok {
		return cached
	}

	match, ok := m.resolve(name, bold, italic)
	if !ok {
		match = keywordFallback(name)
	}
	m.cache[key] = match
	return match
}

func (m *Matcher) resolve(name string, bold, italic bool) (Match, bool) {
	if m.resolver == nil {
		return Match{}, false
	}
	match, err := m.resolver.Resolve(NormalizeName(name), bold, italic)
	if err != nil || match.Family == "" {
		return Match{}, false
	}
	if match.Source == "" {
		match.Source = "resolver"
	}
	return match, true
}

// Reset clears the cache. Called when the document is closed or replaced.
func (m *Matcher) Reset() {
	m.cache = make(map[string]Match)
}

// CacheSize returns the number of cached matches.
func (m *Matcher) CacheSize() int {
	return len(m.cache)
}

// keywordFallback maps a font name to a broadly available family by
// keyword, at low confidence.
func keywordFallback(name string) Match {
	lower := strings.ToLower(name)
	family := "Arial"
	switch {
	case strings.Contains(lower, "mono"),
		strings.Contains(lower, "courier"),
		strings.Contains(lower, "code"):
		family = "Courier New"
	case strings.Contains(lower, "serif") && !strings.Contains(lower, "sans"):
		family = "Georgia"
	}
	return Match{Family: family, Source: "fallback", Confidence: FallbackConfidence}
}

// NormalizeName strips the subset prefix (e.g. "ABCDEF+Times") and maps
// the standard PDF base fonts to their common family names.
func NormalizeName(name string) string {
	if pos := strings.Index(name, "+"); pos >= 0 && pos == 6 {
		name = name[pos+1:]
	}
	name = strings.TrimPrefix(name, "/")

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "helvetica"), strings.Contains(lower, "arial"):
		return "Arial"
	case strings.Contains(lower, "times"):
		return "Times New Roman"
	case strings.Contains(lower, "courier"):
		return "Courier New"
	case strings.Contains(lower, "georgia"):
		return "Georgia"
	}
	return name
}

// StyleFromName infers bold/italic flags from a PDF font name.
func StyleFromName(name string) (bold, italic bool) {
	lower := strings.ToLower(name)
	bold = strings.Contains(lower, "bold")
	italic = strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
	return bold, italic
}
