package jamo

import "fmt"

// The fixed dictionary of modern compounds, keyed by HCJ-normalized
// components in order: the 16 double consonants and consonant clusters
// admissible in contemporary Korean plus the 7 diphthongs. Combinations the
// dictionary does not list, archaic ones included, do not compose.
var modernCompounds = map[[3]rune]rune{
	{'ㄱ', 'ㄱ'}: 'ㄲ',
	{'ㄱ', 'ㅅ'}: 'ㄳ',
	{'ㄴ', 'ㅈ'}: 'ㄵ',
	{'ㄴ', 'ㅎ'}: 'ㄶ',
	{'ㄷ', 'ㄷ'}: 'ㄸ',
	{'ㄹ', 'ㄱ'}: 'ㄺ',
	{'ㄹ', 'ㅁ'}: 'ㄻ',
	{'ㄹ', 'ㅂ'}: 'ㄼ',
	{'ㄹ', 'ㅅ'}: 'ㄽ',
	{'ㄹ', 'ㅌ'}: 'ㄾ',
	{'ㄹ', 'ㅍ'}: 'ㄿ',
	{'ㄹ', 'ㅎ'}: 'ㅀ',
	{'ㅂ', 'ㅂ'}: 'ㅃ',
	{'ㅂ', 'ㅅ'}: 'ㅄ',
	{'ㅅ', 'ㅅ'}: 'ㅆ',
	{'ㅈ', 'ㅈ'}: 'ㅉ',
	{'ㅗ', 'ㅏ'}: 'ㅘ',
	{'ㅗ', 'ㅐ'}: 'ㅙ',
	{'ㅗ', 'ㅣ'}: 'ㅚ',
	{'ㅜ', 'ㅓ'}: 'ㅝ',
	{'ㅜ', 'ㅔ'}: 'ㅞ',
	{'ㅜ', 'ㅣ'}: 'ㅟ',
	{'ㅡ', 'ㅣ'}: 'ㅢ',
}

// DecomposeJamo returns the simple jamo components of a compound jamo,
// expanding nested compounds recursively. A jamo without a known
// decomposition is returned unchanged as a 1-element result. Opaque markers
// and the two classless fillers are stripped; use DecomposeJamoVerbose to
// retain them, and DecomposeJamoStrict to treat missing decompositions as
// errors.
func DecomposeJamo(c rune) ([]rune, error) {
	return Default().DecomposeJamo(c)
}

// DecomposeJamoStrict is DecomposeJamo, except that a jamo without a known
// decomposition fails with *InvalidJamoError instead of echoing back.
func DecomposeJamoStrict(c rune) ([]rune, error) {
	return Default().DecomposeJamoStrict(c)
}

// DecomposeJamoVerbose is DecomposeJamo with opaque markers and filler code
// points retained in the result.
func DecomposeJamoVerbose(c rune) ([]Token, error) {
	return Default().DecomposeJamoVerbose(c)
}

// ComposeJamo combines 2–3 components into the compound jamo they form in
// contemporary Korean. Components may be U+11xx jamo or HCJ letters and are
// matched order-sensitively; the returned compound is an HCJ letter.
// Combinations outside the fixed modern dictionary fail with
// *InvalidJamoError; archaic combinations do not compose.
func ComposeJamo(parts ...rune) (rune, error) {
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("compose: want 2 or 3 components, got %d", len(parts))
	}
	var key [3]rune
	for i, part := range parts {
		key[i] = jamoToHCJRune(part)
	}
	if compound, ok := modernCompounds[key]; ok {
		return compound, nil
	}
	return 0, invalidJamo(parts[0], "components do not form a modern compound")
}

// IsJamoCompound reports whether a single jamo decomposes into two or more
// components. Unlike the pure range predicates it fails on non-jamo input.
func IsJamoCompound(r rune) (bool, error) {
	return Default().IsJamoCompound(r)
}

// DecomposeJamo looks up c in this table; see the package-level function.
func (t *Table) DecomposeJamo(c rune) ([]rune, error) {
	return t.decompose(c, false)
}

// DecomposeJamoStrict looks up c in this table; see the package-level
// function.
func (t *Table) DecomposeJamoStrict(c rune) ([]rune, error) {
	return t.decompose(c, true)
}

// DecomposeJamoVerbose looks up c in this table; see the package-level
// function.
func (t *Table) DecomposeJamoVerbose(c rune) ([]Token, error) {
	if !IsJamo(c) {
		return nil, invalidJamo(c, "not a jamo character")
	}
	expanded := t.expand(c, 0)
	if expanded == nil {
		return []Token{{Rune: c}}, nil
	}
	return expanded, nil
}

func (t *Table) decompose(c rune, strict bool) ([]rune, error) {
	if !IsJamo(c) {
		return nil, invalidJamo(c, "not a jamo character")
	}
	expanded := t.expand(c, 0)
	if expanded == nil {
		if strict {
			return nil, invalidJamo(c, "no known decomposition")
		}
		return []rune{c}, nil
	}
	components := make([]rune, 0, len(expanded))
	for _, token := range expanded {
		if token.IsMarker() || token.Rune == leadFiller || token.Rune == vowelFiller {
			continue
		}
		components = append(components, token.Rune)
	}
	return components, nil
}

// IsJamoCompound checks c against this table; see the package-level
// function.
func (t *Table) IsJamoCompound(r rune) (bool, error) {
	if !IsJamo(r) {
		return false, invalidJamo(r, "not a jamo character")
	}
	n := 0
	for _, token := range t.expand(r, 0) {
		if !token.IsMarker() {
			n++
		}
	}
	return n >= 2, nil
}
