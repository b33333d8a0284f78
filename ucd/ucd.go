/*
Package ucd is a small Unicode Character Database view over the Hangul
blocks: standardized names, exact reverse name lookup, and compatibility
decompositions.

The reverse lookup is served by a name index built once over the Hangul jamo
blocks (U+1100–U+11FF plus the U+A960 and U+D7B0 extensions) and the Hangul
Compatibility Jamo block. The index is read-only after construction and safe
for concurrent use.
*/
package ucd

import (
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// tracer writes to trace with key 'jamo.ucd'
func tracer() tracing.Trace {
	return tracing.Select("jamo.ucd")
}

var hangulBlocks = [][2]rune{
	{0x1100, 0x11FF}, // Hangul Jamo
	{0x3131, 0x318E}, // Hangul Compatibility Jamo
	{0xA960, 0xA97C}, // Hangul Jamo Extended-A
	{0xD7B0, 0xD7C6}, // Hangul Jamo Extended-B, vowels
	{0xD7CB, 0xD7FB}, // Hangul Jamo Extended-B, tail consonants
}

var (
	indexOnce sync.Once
	nameIndex *trie.Trie
)

func index() *trie.Trie {
	indexOnce.Do(func() {
		nameIndex = trie.New()
		count := 0
		for _, block := range hangulBlocks {
			for r := block[0]; r <= block[1]; r++ {
				name := runenames.Name(r)
				if name == "" {
					continue
				}
				nameIndex.Add(name, r)
				count++
			}
		}
		tracer().Infof("name index holds %d Hangul character names", count)
	})
	return nameIndex
}

// Name returns the standardized Unicode name of r, or "" if r has none.
func Name(r rune) string {
	return runenames.Name(r)
}

// Lookup resolves a full standardized name back to its character. It covers
// the Hangul jamo and compatibility blocks only and reports not-found rather
// than failing.
func Lookup(name string) (rune, bool) {
	node, ok := index().Find(name)
	if !ok {
		return 0, false
	}
	r, ok := node.Meta().(rune)
	return r, ok
}

// NamesWithPrefix returns all indexed Hangul character names sharing prefix.
func NamesWithPrefix(prefix string) []string {
	return index().PrefixSearch(prefix)
}

// Decomposition returns the full compatibility decomposition of r, or nil if
// r does not decompose.
func Decomposition(r rune) []rune {
	s := string(r)
	d := norm.NFKD.String(s)
	if d == s {
		return nil
	}
	return []rune(d)
}
