/*
Package jamo is a Hangul syllable and jamo analysis toolkit.

The default exchange form is Hangul characters, not codepoints. The jamo
exchange form is U+11xx characters, not U+3xxx Hangul Compatibility Jamo
(HCJ) characters or codepoints. Syllables in U+AC00–U+D7A3 convert to and
from their lead/vowel/tail jamo by closed-form arithmetic; jamo convert to
and from HCJ through their standardized Unicode names; compound jamo (double
consonants, consonant clusters, diphthongs) decompose recursively through an
immutable decomposition table loaded once from embedded reference data.

For more information on the underlying arithmetic, see:

	http://gernot-katzers-spice-pages.com/var/korean_hangul_unicode.html

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package jamo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'jamo'
func tracer() tracing.Trace {
	return tracing.Select("jamo")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
