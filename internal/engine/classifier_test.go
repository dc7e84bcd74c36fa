package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProvenance(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain lower", input: "nubank", expected: "NUBANK"},
		{name: "diacritics stripped", input: "Itaú Corretora de Valores", expected: "ITAU CORRETORA DE VALORES"},
		{name: "cedilla and tilde", input: "negociação", expected: "NEGOCIACAO"},
		{name: "already normalized", input: "B3-NEGOCIACAO", expected: "B3-NEGOCIACAO"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeProvenance(tc.input))
		})
	}
}

func TestClassifySource(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected SourceTag
		ok       bool
	}{
		{name: "nubank keyword", input: "NuBank Corretora", expected: TagNuBank, ok: true},
		{name: "nu invest variant", input: "NU INVEST CORRETORA DE VALORES S.A.", expected: TagNuBank, ok: true},
		{name: "xp", input: "xp investimentos", expected: TagXP, ok: true},
		{name: "itau with accent", input: "Itaú Unibanco", expected: TagItau, ok: true},
		{name: "b3 statement", input: "B3-RELATORIO-MENSAL", expected: TagB3, ok: true},
		{name: "no match", input: "Clear Corretora", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tag, ok := ClassifySource(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, tag)
			}
		})
	}
}

// The rule table is ordered: an XP trade settled through B3 must still
// classify as XP when the XP keyword appears, and first-match-wins
// applies within a single string.
func TestClassifySourceTableOrder(t *testing.T) {
	tag, ok := ClassifySource("XP INVESTIMENTOS via B3")
	assert.True(t, ok)
	assert.Equal(t, TagXP, tag)
}
