package fonts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/font"
)

// DirResolver resolves font names against a directory of TTF/OTF files,
// reading each file's family metadata. It is a small stand-in for a real
// system font service and a working example of the Resolver contract.
type DirResolver struct {
	// families maps lower-cased family name to the declared family name.
	families map[string]string
}

// NewDirResolver scans dir (non-recursively) for .ttf and .otf files and
// indexes their family names. Files that fail to parse are skipped.
func NewDirResolver(dir string) (*DirResolver, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read font directory: %w", err)
	}

	r := &DirResolver{families: make(map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		face, err := font.ParseTTF(bytes.NewReader(data))
		if err != nil {
			continue
		}
		family := face.Describe().Family
		if family != "" {
			r.families[strings.ToLower(family)] = family
		}
	}
	return r, nil
}

// Families returns the indexed family names.
func (r *DirResolver) Families() []string {
	out := make([]string, 0, len(r.families))
	for _, family := range r.families {
		out = append(out, family)
	}
	return out
}

// Resolve matches a normalized font name against the indexed families:
// exact (case-insensitive) matches score 0.95, substring matches 0.8.
func (r *DirResolver) Resolve(name string, bold, italic bool) (Match, error) {
	lower := strings.ToLower(name)

	if family, ok := r.families[lower]; ok {
		return Match{Family: family, Source: "resolver", Confidence: 0.95}, nil
	}

	for key, family := range r.families {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return Match{Family: family, Source: "resolver", Confidence: 0.8}, nil
		}
	}

	return Match{}, fmt.Errorf("no installed family matches %q", name)
}
