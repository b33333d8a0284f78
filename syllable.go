package jamo

import (
	"iter"
	"strings"
)

// DecomposeSyllable splits a precomposed Hangul syllable into its lead,
// vowel, and tail jamo. A syllable without a tail yields tail == 0.
func DecomposeSyllable(s rune) (lead, vowel, tail rune, err error) {
	if !IsHangulChar(s) {
		return 0, 0, 0, invalidJamo(s, "not a Hangul syllable")
	}
	rem := s - hangulBase
	ti := rem % tailCount
	vi := 1 + (rem-ti)/tailCount%vowelCount
	li := 1 + rem/(vowelCount*tailCount)
	lead = li + leadOffset
	vowel = vi + vowelOffset
	if ti != 0 {
		tail = ti + tailOffset
	}
	return lead, vowel, tail, nil
}

// ComposeSyllable returns the Hangul syllable for the given lead, vowel, and
// tail. tail == 0 composes a syllable without a tail.
//
// Components may be U+11xx jamo or HCJ letters; HCJ input is resolved to
// positional jamo first. Composition fails with *InvalidJamoError when a
// component does not classify for its position or when the arithmetic would
// leave the syllable block.
func ComposeSyllable(lead, vowel, tail rune) (rune, error) {
	lead = resolveForClass(lead, Lead)
	vowel = resolveForClass(vowel, Vowel)
	if class, err := GetJamoClass(lead); err != nil || class != Lead {
		return 0, invalidJamo(lead, "not a lead jamo")
	}
	if class, err := GetJamoClass(vowel); err != nil || class != Vowel {
		return 0, invalidJamo(vowel, "not a vowel jamo")
	}
	ti := rune(0)
	if tail != 0 {
		tail = resolveForClass(tail, Tail)
		if class, err := GetJamoClass(tail); err != nil || class != Tail {
			return 0, invalidJamo(tail, "not a tail jamo")
		}
		ti = tail - tailOffset
	}
	li := lead - leadOffset
	vi := vowel - vowelOffset
	s := ti + (vi-1)*tailCount + (li-1)*vowelCount*tailCount + hangulBase
	if !IsHangulChar(s) {
		return 0, invalidJamo(s, "could not synthesize a Hangul syllable")
	}
	return s, nil
}

func resolveForClass(r rune, class JamoClass) rune {
	if IsHCJ(r) {
		return HCJToJamo(r, class)
	}
	return r
}

// HangulToJamo returns a lazy, order-preserving stream over text in which
// every Hangul syllable is replaced by its 2–3 constituent jamo. All other
// runes pass through verbatim.
func HangulToJamo(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range text {
			if !IsHangulChar(r) {
				if !yield(r) {
					return
				}
				continue
			}
			lead, vowel, tail, _ := DecomposeSyllable(r)
			if !yield(lead) || !yield(vowel) {
				return
			}
			if tail != 0 && !yield(tail) {
				return
			}
		}
	}
}

// H2J is the eagerly-joined string form of HangulToJamo.
func H2J(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for r := range HangulToJamo(text) {
		b.WriteRune(r)
	}
	return b.String()
}

// J2H is shorthand for ComposeSyllable.
func J2H(lead, vowel, tail rune) (rune, error) {
	return ComposeSyllable(lead, vowel, tail)
}
