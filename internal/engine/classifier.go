package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SourceTag is a normalized institution label derived from free-text
// provenance fields. It is computed on demand and never stored.
type SourceTag string

const (
	TagNuBank SourceTag = "NU BANK"
	TagXP     SourceTag = "XP"
	TagItau   SourceTag = "ITAU"
	TagB3     SourceTag = "B3"
)

// sourceRule maps substring keywords to a tag. Rules are evaluated in
// order and the first keyword hit wins, so more specific institutions
// must come before "B3" (every statement mentions B3 somewhere).
type sourceRule struct {
	Tag      SourceTag
	Keywords []string
}

// sourceRules is the classification table applied identically to
// asset-level and transaction-level provenance fields.
var sourceRules = []sourceRule{
	{Tag: TagNuBank, Keywords: []string{"NUBANK", "NU INVEST", "NU BANK"}},
	{Tag: TagXP, Keywords: []string{"XP"}},
	{Tag: TagItau, Keywords: []string{"ITAU"}},
	{Tag: TagB3, Keywords: []string{"B3"}},
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeProvenance upper-cases a provenance string with diacritics
// removed ("Itaú Corretora" becomes "ITAU CORRETORA"). Empty input stays
// empty; a transform failure falls back to plain upper-casing.
func NormalizeProvenance(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}

// ClassifySource maps a free-text provenance field to a SourceTag.
// Returns ok=false when no keyword matches.
func ClassifySource(raw string) (SourceTag, bool) {
	text := NormalizeProvenance(raw)
	if text == "" {
		return "", false
	}
	for _, rule := range sourceRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Tag, true
			}
		}
	}
	return "", false
}
