// internal/ui/glyphs.go
package ui

import (
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/image/font/sfnt"
)

// MissingGlyphs parses a TrueType font and returns the runes used by labels
// that the font has no glyph for, sorted and without duplicates.
func MissingGlyphs(ttf []byte, labels []string) ([]rune, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	var buf sfnt.Buffer
	seen := make(map[rune]bool)
	var missing []rune
	for _, label := range labels {
		for _, r := range label {
			if seen[r] || unicode.IsSpace(r) {
				continue
			}
			seen[r] = true
			idx, err := f.GlyphIndex(&buf, r)
			if err != nil {
				return nil, fmt.Errorf("glyph %q: %w", r, err)
			}
			if idx == 0 {
				missing = append(missing, r)
			}
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing, nil
}

// Codepoints returns the distinct runes of labels plus printable ASCII, in
// ascending order. The renderer bakes exactly these into its font atlas.
func Codepoints(labels []string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	for r := rune(32); r < 127; r++ {
		add(r)
	}
	for _, label := range labels {
		for _, r := range label {
			add(r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
