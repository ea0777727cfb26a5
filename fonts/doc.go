// Package fonts maps PDF-internal font names to best-available font
// families.
//
// The Matcher caches results per (name, bold, italic) key for the life of
// a document import and delegates misses to a Resolver collaborator. A
// resolver failure is never an error: the matcher degrades to a keyword
// table (serif names to Georgia, monospace names to Courier New, anything
// else to Arial) at low confidence.
package fonts
