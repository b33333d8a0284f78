package jamo

import (
	"iter"
	"strings"

	"github.com/npillmayer/jamo/ucd"
)

// Positional tokens in standardized Hangul character names. HCJ letters use
// the generic LETTER token instead; substituting one for the other and
// resolving the resulting name is the whole jamo-to-HCJ mapping.
const (
	choseongToken  = "CHOSEONG"
	jungseongToken = "JUNGSEONG"
	jongseongToken = "JONGSEONG"
	letterToken    = "LETTER"
)

func positionalToken(class JamoClass) string {
	switch class {
	case Lead:
		return choseongToken
	case Vowel:
		return jungseongToken
	}
	return jongseongToken
}

func jamoToHCJRune(r rune) rune {
	name := ucd.Name(r)
	if name == "" {
		return r
	}
	positional := ""
	for _, token := range []string{choseongToken, jungseongToken, jongseongToken} {
		if strings.Contains(name, token) {
			positional = token
			break
		}
	}
	if positional == "" {
		return r
	}
	hcj, ok := ucd.Lookup(strings.Replace(name, positional, letterToken, 1))
	if !ok {
		return r
	}
	return hcj
}

// JamoToHCJ returns a lazy, order-preserving stream over text in which every
// jamo with a known HCJ counterpart is replaced by that counterpart.
//
// The function is total: non-jamo runes, runes that already are HCJ, and
// archaic jamo without an HCJ counterpart all pass through verbatim.
func JamoToHCJ(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range text {
			if !yield(jamoToHCJRune(r)) {
				return
			}
		}
	}
}

// J2HCJ is the eagerly-joined string form of JamoToHCJ.
func J2HCJ(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for r := range JamoToHCJ(text) {
		b.WriteRune(r)
	}
	return b.String()
}

// HCJToJamo converts an HCJ letter to the positional U+11xx jamo for the
// given class. Like JamoToHCJ it is total and returns the input unchanged
// when no positional counterpart resolves; callers that require strict
// failure must check IsJamo on the result themselves.
func HCJToJamo(hcj rune, class JamoClass) rune {
	name := ucd.Name(hcj)
	if name == "" || !strings.Contains(name, letterToken) {
		return hcj
	}
	j, ok := ucd.Lookup(strings.Replace(name, letterToken, positionalToken(class), 1))
	if !ok {
		return hcj
	}
	return j
}

// HCJ2J is shorthand for HCJToJamo.
func HCJ2J(hcj rune, class JamoClass) rune {
	return HCJToJamo(hcj, class)
}
